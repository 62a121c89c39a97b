// Package reminder handles weekly_reminder jobs from the reminders queue.
package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/internal/repository/user"
	svc "github.com/DevRamona/Course-Management-Platform/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/reminder/mock.go -package=mocks

type notificationService interface {
	SendReminderNotification(ctx context.Context, facilitatorID int64, deadline time.Time) (svc.Result, error)
	SetJobStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) error
}

type Handler struct {
	service notificationService
}

func NewHandler(service notificationService) *Handler {
	return &Handler{service: service}
}

// Handle dispatches one reminder to the composer. A facilitator with nothing
// left to submit is a no-op success; a deleted facilitator is permanent
// failure, everything else retries with backoff.
func (h *Handler) Handle(ctx context.Context, job queue.Job, strategy retry.Strategy) {
	var p queue.ReminderPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to unmarshal reminder payload")
		return
	}

	zlog.Logger.Info().Int64("facilitator_id", p.FacilitatorID).Str("job_id", job.ID.String()).
		Msg("processing weekly reminder")

	var permErr error
	var result svc.Result
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, sendErr := h.service.SendReminderNotification(ctx, p.FacilitatorID, p.Deadline)
		if errors.Is(sendErr, user.ErrUserNotFound) {
			permErr = sendErr
			return nil
		}
		result = res

		return sendErr
	}, strategy)

	if permErr != nil || err != nil {
		if permErr == nil {
			permErr = err
		}

		zlog.Logger.Error().Err(permErr).Str("job_id", job.ID.String()).Msg("reminder job failed")
		h.setStatus(ctx, strategy, job.ID, "failed")
		return
	}

	if result.Message != "" {
		zlog.Logger.Info().Str("job_id", job.ID.String()).Msgf("reminder job completed: %s", result.Message)
	} else {
		zlog.Logger.Info().Str("job_id", job.ID.String()).Msg("reminder job completed")
	}
	h.setStatus(ctx, strategy, job.ID, "sent")
}

func (h *Handler) setStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) {
	if err := h.service.SetJobStatus(ctx, strategy, jobID, status); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", jobID.String()).Msgf("failed to set status=%s", status)
	}
}
