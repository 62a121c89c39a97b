package alert

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/DevRamona/Course-Management-Platform/internal/mocks/rabbitmq/handlers/alert"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/internal/repository/user"
	svc "github.com/DevRamona/Course-Management-Platform/internal/service/notification"
)

func makeJob(t *testing.T, managerID int64, alertType string, data queue.AlertData) queue.Job {
	t.Helper()

	payload, err := json.Marshal(queue.AlertPayload{
		ManagerID: managerID,
		AlertType: alertType,
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	return queue.Job{
		ID:      uuid.New(),
		Type:    queue.TypeManagerAlert,
		Payload: payload,
	}
}

func TestHandler_Handle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	data := queue.AlertData{FacilitatorName: "Jane Doe", ModuleName: "Backend Development", WeekNumber: 5, Year: 2024}
	job := makeJob(t, 3, "missed_deadline", data)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().
		SendManagerAlert(gomock.Any(), int64(3), "missed_deadline", data).
		Return(svc.Result{Success: true}, nil)
	serviceMock.EXPECT().
		SetJobStatus(gomock.Any(), strategy, job.ID, "sent").
		Return(nil)

	h.Handle(context.Background(), job, strategy)
}

func TestHandler_Handle_ManagerGoneFailsWithoutRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	job := makeJob(t, 3, "missed_deadline", queue.AlertData{})
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	serviceMock.EXPECT().
		SendManagerAlert(gomock.Any(), int64(3), "missed_deadline", gomock.Any()).
		Return(svc.Result{}, user.ErrUserNotFound).
		Times(1)
	serviceMock.EXPECT().
		SetJobStatus(gomock.Any(), strategy, job.ID, "failed").
		Return(nil)

	h.Handle(context.Background(), job, strategy)
}

func TestHandler_Handle_TransientFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	job := makeJob(t, 3, "late_submission", queue.AlertData{})
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	gomock.InOrder(
		serviceMock.EXPECT().
			SendManagerAlert(gomock.Any(), int64(3), "late_submission", gomock.Any()).
			Return(svc.Result{}, errors.New("smtp timeout")),
		serviceMock.EXPECT().
			SendManagerAlert(gomock.Any(), int64(3), "late_submission", gomock.Any()).
			Return(svc.Result{Success: true}, nil),
	)
	serviceMock.EXPECT().
		SetJobStatus(gomock.Any(), strategy, job.ID, "sent").
		Return(nil)

	h.Handle(context.Background(), job, strategy)
}

func TestHandler_Handle_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	job := queue.Job{
		ID:      uuid.New(),
		Type:    queue.TypeManagerAlert,
		Payload: []byte("{not json"),
	}

	h.Handle(context.Background(), job, retry.Strategy{Attempts: 1, Delay: time.Millisecond})
}
