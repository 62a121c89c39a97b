// Package notification handles activity_log_submitted jobs from the
// notifications queue.
package notification

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/internal/repository/activitylog"
	svc "github.com/DevRamona/Course-Management-Platform/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks

type notificationService interface {
	SendActivityLogNotification(ctx context.Context, activityLogID int64) (svc.Result, error)
	SetJobStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) error
}

type Handler struct {
	service notificationService
}

func NewHandler(service notificationService) *Handler {
	return &Handler{service: service}
}

// Handle dispatches one job to the composer. Transient failures are retried
// with the configured backoff; a vanished activity log is permanent and fails
// the job immediately.
func (h *Handler) Handle(ctx context.Context, job queue.Job, strategy retry.Strategy) {
	var p queue.ActivityLogPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to unmarshal notification payload")
		return
	}

	zlog.Logger.Info().Int64("activity_log_id", p.ActivityLogID).Str("job_id", job.ID.String()).
		Msg("processing activity log notification")

	var permErr error
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, sendErr := h.service.SendActivityLogNotification(ctx, p.ActivityLogID)
		if errors.Is(sendErr, activitylog.ErrActivityLogNotFound) {
			// Entity deleted between enqueue and processing; retrying cannot succeed.
			permErr = sendErr
			return nil
		}

		return sendErr
	}, strategy)

	if permErr != nil || err != nil {
		if permErr == nil {
			permErr = err
		}

		zlog.Logger.Error().Err(permErr).Str("job_id", job.ID.String()).Msg("notification job failed")
		h.setStatus(ctx, strategy, job.ID, "failed")
		return
	}

	zlog.Logger.Info().Str("job_id", job.ID.String()).Msg("notification job completed")
	h.setStatus(ctx, strategy, job.ID, "sent")
}

func (h *Handler) setStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) {
	if err := h.service.SetJobStatus(ctx, strategy, jobID, status); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", jobID.String()).Msgf("failed to set status=%s", status)
	}
}
