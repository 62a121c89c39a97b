// Package scheduler runs the two periodic passes that feed the reminder and
// alert queues: a daily sweep scheduling deadline-timed reminders for
// facilitators with unsubmitted logs, and an hourly sweep raising manager
// alerts for logs whose deadline already passed.
package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/model"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/pkg/week"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

type activityLogRepository interface {
	HasUnsubmitted(ctx context.Context, facilitatorID int64, week, year int) (bool, error)
	ListMissed(ctx context.Context, week, year int) ([]model.MissedLog, error)
}

type userRepository interface {
	ListActiveByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

type notificationService interface {
	CreateReminder(ctx context.Context, strategy retry.Strategy, facilitatorID int64, deadline time.Time) error
	CreateAlert(ctx context.Context, strategy retry.Strategy, managerID int64, alertType string, data queue.AlertData) error
}

// Scheduler decides who needs a reminder and who triggers a missed-deadline
// alert. Both passes only read and enqueue; a crash between the two loses one
// cycle and self-heals on the next run.
type Scheduler struct {
	logs     activityLogRepository
	users    userRepository
	service  notificationService
	strategy retry.Strategy

	clock func() time.Time
}

func New(logs activityLogRepository, users userRepository, service notificationService, strategy retry.Strategy) *Scheduler {
	return &Scheduler{
		logs:     logs,
		users:    users,
		service:  service,
		strategy: strategy,
		clock:    time.Now,
	}
}

// Run executes both passes immediately, then on their configured intervals,
// until ctx is cancelled. There is no persisted last-run checkpoint: a
// restart re-runs both passes, which is safe because the underlying condition
// persists until submission occurs.
func (s *Scheduler) Run(ctx context.Context, reminderInterval, alertInterval time.Duration) {
	if err := s.ScheduleWeeklyReminders(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to schedule weekly reminders")
	}
	if err := s.CheckMissedDeadlines(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to check missed deadlines")
	}

	reminderTicker := time.NewTicker(reminderInterval)
	defer reminderTicker.Stop()
	alertTicker := time.NewTicker(alertInterval)
	defer alertTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-reminderTicker.C:
			if err := s.ScheduleWeeklyReminders(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to schedule weekly reminders")
			}
		case <-alertTicker.C:
			if err := s.CheckMissedDeadlines(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to check missed deadlines")
			}
		}
	}
}

// ScheduleWeeklyReminders enqueues one deadline-timed reminder for every
// active facilitator with an unsubmitted log for the current ISO week.
func (s *Scheduler) ScheduleWeeklyReminders(ctx context.Context) error {
	now := s.clock()
	year, wk := week.Current(now)
	deadline := week.Deadline(now)

	facilitators, err := s.users.ListActiveByRole(ctx, model.RoleFacilitator)
	if err != nil {
		return err
	}

	scheduled := 0
	for _, f := range facilitators {
		pending, err := s.logs.HasUnsubmitted(ctx, f.ID, wk, year)
		if err != nil {
			zlog.Logger.Error().Err(err).Int64("facilitator_id", f.ID).Msg("failed to check pending logs")
			continue
		}
		if !pending {
			continue
		}

		if err := s.service.CreateReminder(ctx, s.strategy, f.ID, deadline); err != nil {
			zlog.Logger.Error().Err(err).Int64("facilitator_id", f.ID).Msg("failed to schedule reminder")
			continue
		}

		scheduled++
	}

	zlog.Logger.Info().Int("count", scheduled).Int("week", wk).Int("year", year).
		Msg("weekly reminder pass finished")

	return nil
}

// CheckMissedDeadlines raises one alert per (missed log, active manager) pair
// for the previous ISO week. The fan-out is bounded by tens of managers at a
// single institution.
func (s *Scheduler) CheckMissedDeadlines(ctx context.Context) error {
	now := s.clock()
	year, wk := week.Previous(now)

	missed, err := s.logs.ListMissed(ctx, wk, year)
	if err != nil {
		return err
	}

	if len(missed) > 0 {
		managers, err := s.users.ListActiveByRole(ctx, model.RoleManager)
		if err != nil {
			return err
		}

		for _, log := range missed {
			for _, manager := range managers {
				err := s.service.CreateAlert(ctx, s.strategy, manager.ID, "missed_deadline", queue.AlertData{
					FacilitatorName: log.FacilitatorName,
					FacilitatorID:   log.FacilitatorID,
					ModuleName:      log.ModuleName,
					WeekNumber:      log.WeekNumber,
					Year:            log.Year,
					Deadline:        now.Format(time.RFC3339),
				})
				if err != nil {
					zlog.Logger.Error().Err(err).Int64("manager_id", manager.ID).
						Int64("activity_log_id", log.ActivityLogID).Msg("failed to enqueue alert")
				}
			}
		}
	}

	zlog.Logger.Info().Int("missed", len(missed)).Int("week", wk).Int("year", year).
		Msg("missed-deadline pass finished")

	return nil
}
