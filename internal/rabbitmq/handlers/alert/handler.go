// Package alert handles manager_alert jobs from the alerts queue.
package alert

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/internal/repository/user"
	svc "github.com/DevRamona/Course-Management-Platform/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/alert/mock.go -package=mocks

type notificationService interface {
	SendManagerAlert(ctx context.Context, managerID int64, alertType string, data queue.AlertData) (svc.Result, error)
	SetJobStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) error
}

type Handler struct {
	service notificationService
}

func NewHandler(service notificationService) *Handler {
	return &Handler{service: service}
}

// Handle dispatches one manager alert to the composer. A deleted manager is
// permanent failure; everything else retries with backoff. A job that
// exhausts its attempts is only logged, there is no alert-on-alert-failure.
func (h *Handler) Handle(ctx context.Context, job queue.Job, strategy retry.Strategy) {
	var p queue.AlertPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to unmarshal alert payload")
		return
	}

	zlog.Logger.Info().Int64("manager_id", p.ManagerID).Str("alert_type", p.AlertType).
		Str("job_id", job.ID.String()).Msg("processing manager alert")

	var permErr error
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, sendErr := h.service.SendManagerAlert(ctx, p.ManagerID, p.AlertType, p.Data)
		if errors.Is(sendErr, user.ErrUserNotFound) {
			permErr = sendErr
			return nil
		}

		return sendErr
	}, strategy)

	if permErr != nil || err != nil {
		if permErr == nil {
			permErr = err
		}

		zlog.Logger.Error().Err(permErr).Str("job_id", job.ID.String()).Msg("alert job failed")
		h.setStatus(ctx, strategy, job.ID, "failed")
		return
	}

	zlog.Logger.Info().Str("job_id", job.ID.String()).Msg("alert job completed")
	h.setStatus(ctx, strategy, job.ID, "sent")
}

func (h *Handler) setStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) {
	if err := h.service.SetJobStatus(ctx, strategy, jobID, status); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", jobID.String()).Msgf("failed to set status=%s", status)
	}
}
