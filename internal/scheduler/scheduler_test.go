package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/DevRamona/Course-Management-Platform/internal/mocks/scheduler"
	"github.com/DevRamona/Course-Management-Platform/internal/model"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/pkg/week"
)

func TestScheduler_ScheduleWeeklyReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logsMock := mocks.NewMockactivityLogRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	serviceMock := mocks.NewMocknotificationService(ctrl)

	strategy := retry.Strategy{}
	s := New(logsMock, usersMock, serviceMock, strategy)

	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) // ISO week 5
	s.clock = func() time.Time { return now }

	deadline := week.Deadline(now)
	facilitators := []model.User{
		{ID: 1, Role: model.RoleFacilitator},
		{ID: 2, Role: model.RoleFacilitator},
	}

	usersMock.EXPECT().ListActiveByRole(gomock.Any(), model.RoleFacilitator).Return(facilitators, nil)
	logsMock.EXPECT().HasUnsubmitted(gomock.Any(), int64(1), 5, 2024).Return(true, nil)
	logsMock.EXPECT().HasUnsubmitted(gomock.Any(), int64(2), 5, 2024).Return(false, nil)

	// Only the facilitator with an unsubmitted log gets a reminder.
	serviceMock.EXPECT().CreateReminder(gomock.Any(), strategy, int64(1), deadline).Return(nil)

	err := s.ScheduleWeeklyReminders(context.Background())
	assert.NoError(t, err)
}

func TestScheduler_ScheduleWeeklyReminders_CheckFailureSkipsOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logsMock := mocks.NewMockactivityLogRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	serviceMock := mocks.NewMocknotificationService(ctrl)

	strategy := retry.Strategy{}
	s := New(logsMock, usersMock, serviceMock, strategy)

	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	s.clock = func() time.Time { return now }

	facilitators := []model.User{
		{ID: 1, Role: model.RoleFacilitator},
		{ID: 2, Role: model.RoleFacilitator},
	}

	usersMock.EXPECT().ListActiveByRole(gomock.Any(), model.RoleFacilitator).Return(facilitators, nil)
	logsMock.EXPECT().HasUnsubmitted(gomock.Any(), int64(1), 5, 2024).Return(false, errors.New("db error"))
	logsMock.EXPECT().HasUnsubmitted(gomock.Any(), int64(2), 5, 2024).Return(true, nil)
	serviceMock.EXPECT().CreateReminder(gomock.Any(), strategy, int64(2), gomock.Any()).Return(nil)

	err := s.ScheduleWeeklyReminders(context.Background())
	assert.NoError(t, err)
}

func TestScheduler_ScheduleWeeklyReminders_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logsMock := mocks.NewMockactivityLogRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	serviceMock := mocks.NewMocknotificationService(ctrl)

	s := New(logsMock, usersMock, serviceMock, retry.Strategy{})

	listErr := errors.New("db error")
	usersMock.EXPECT().ListActiveByRole(gomock.Any(), model.RoleFacilitator).Return(nil, listErr)

	err := s.ScheduleWeeklyReminders(context.Background())
	assert.ErrorIs(t, err, listErr)
}

func TestScheduler_CheckMissedDeadlines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logsMock := mocks.NewMockactivityLogRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	serviceMock := mocks.NewMocknotificationService(ctrl)

	strategy := retry.Strategy{}
	s := New(logsMock, usersMock, serviceMock, strategy)

	now := time.Date(2024, 2, 8, 9, 0, 0, 0, time.UTC) // ISO week 6, previous is week 5
	s.clock = func() time.Time { return now }

	missed := []model.MissedLog{
		{ActivityLogID: 10, FacilitatorID: 1, FacilitatorName: "Jane Doe", ModuleName: "Backend Development", WeekNumber: 5, Year: 2024},
		{ActivityLogID: 11, FacilitatorID: 2, FacilitatorName: "John Smith", ModuleName: "Databases", WeekNumber: 5, Year: 2024},
	}
	managers := []model.User{
		{ID: 3, Role: model.RoleManager},
		{ID: 4, Role: model.RoleManager},
	}

	logsMock.EXPECT().ListMissed(gomock.Any(), 5, 2024).Return(missed, nil)
	usersMock.EXPECT().ListActiveByRole(gomock.Any(), model.RoleManager).Return(managers, nil)

	// One alert per (missed log, manager) pair.
	for _, log := range missed {
		data := queue.AlertData{
			FacilitatorName: log.FacilitatorName,
			FacilitatorID:   log.FacilitatorID,
			ModuleName:      log.ModuleName,
			WeekNumber:      log.WeekNumber,
			Year:            log.Year,
			Deadline:        now.Format(time.RFC3339),
		}
		serviceMock.EXPECT().CreateAlert(gomock.Any(), strategy, int64(3), "missed_deadline", data).Return(nil)
		serviceMock.EXPECT().CreateAlert(gomock.Any(), strategy, int64(4), "missed_deadline", data).Return(nil)
	}

	err := s.CheckMissedDeadlines(context.Background())
	assert.NoError(t, err)
}

func TestScheduler_CheckMissedDeadlines_NothingMissed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logsMock := mocks.NewMockactivityLogRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	serviceMock := mocks.NewMocknotificationService(ctrl)

	s := New(logsMock, usersMock, serviceMock, retry.Strategy{})

	now := time.Date(2024, 2, 8, 9, 0, 0, 0, time.UTC)
	s.clock = func() time.Time { return now }

	// Nobody missed: managers are never listed, nothing is enqueued.
	logsMock.EXPECT().ListMissed(gomock.Any(), 5, 2024).Return(nil, nil)

	err := s.CheckMissedDeadlines(context.Background())
	assert.NoError(t, err)
}

func TestScheduler_CheckMissedDeadlines_YearBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logsMock := mocks.NewMockactivityLogRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	serviceMock := mocks.NewMocknotificationService(ctrl)

	s := New(logsMock, usersMock, serviceMock, retry.Strategy{})

	// 2024-01-03 is ISO week 1 of 2024; the previous week belongs to 2023.
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	s.clock = func() time.Time { return now }

	logsMock.EXPECT().ListMissed(gomock.Any(), 52, 2023).Return(nil, nil)

	err := s.CheckMissedDeadlines(context.Background())
	assert.NoError(t, err)
}
