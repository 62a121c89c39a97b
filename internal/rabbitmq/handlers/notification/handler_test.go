package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/DevRamona/Course-Management-Platform/internal/mocks/rabbitmq/handlers/notification"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/internal/repository/activitylog"
	svc "github.com/DevRamona/Course-Management-Platform/internal/service/notification"
)

func makeJob(t *testing.T, activityLogID int64) queue.Job {
	t.Helper()

	payload, err := json.Marshal(queue.ActivityLogPayload{ActivityLogID: activityLogID})
	if err != nil {
		t.Fatal(err)
	}

	return queue.Job{
		ID:      uuid.New(),
		Type:    queue.TypeActivityLogSubmitted,
		Payload: payload,
	}
}

func TestHandler_Handle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	job := makeJob(t, 42)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().
		SendActivityLogNotification(gomock.Any(), int64(42)).
		Return(svc.Result{Success: true}, nil)
	serviceMock.EXPECT().
		SetJobStatus(gomock.Any(), strategy, job.ID, "sent").
		Return(nil)

	h.Handle(context.Background(), job, strategy)
}

func TestHandler_Handle_NotFoundFailsWithoutRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	job := makeJob(t, 42)
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	// A vanished activity log is permanent: exactly one attempt, then failed.
	serviceMock.EXPECT().
		SendActivityLogNotification(gomock.Any(), int64(42)).
		Return(svc.Result{}, activitylog.ErrActivityLogNotFound).
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

	job := makeJob(t, 42)
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	gomock.InOrder(
		serviceMock.EXPECT().
			SendActivityLogNotification(gomock.Any(), int64(42)).
			Return(svc.Result{}, errors.New("smtp timeout")),
		serviceMock.EXPECT().
			SendActivityLogNotification(gomock.Any(), int64(42)).
			Return(svc.Result{Success: true}, nil),
	)
	serviceMock.EXPECT().
		SetJobStatus(gomock.Any(), strategy, job.ID, "sent").
		Return(nil)

	h.Handle(context.Background(), job, strategy)
}

func TestHandler_Handle_AllAttemptsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	job := makeJob(t, 42)
	strategy := retry.Strategy{Attempts: 2, Delay: time.Millisecond, Backoff: 2}

	serviceMock.EXPECT().
		SendActivityLogNotification(gomock.Any(), int64(42)).
		Return(svc.Result{}, errors.New("smtp timeout")).
		MinTimes(1)
	serviceMock.EXPECT().
		SetJobStatus(gomock.Any(), strategy, job.ID, "failed").
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
		Type:    queue.TypeActivityLogSubmitted,
		Payload: []byte("{not json"),
	}

	// No service calls expected: the job is logged and dropped.
	h.Handle(context.Background(), job, retry.Strategy{Attempts: 1, Delay: time.Millisecond})
}

func TestHandler_Handle_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(serviceMock)

	job := makeJob(t, 42)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	serviceMock.EXPECT().
		SetJobStatus(ctx, strategy, job.ID, "failed").
		Return(nil)

	h.Handle(ctx, job, strategy)
}
