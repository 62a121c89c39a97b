// Package notification composes and enqueues the three mail flows of the
// platform: submission notices to facilitators, delayed weekly reminders, and
// manager alerts.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/model"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/pkg/week"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type activityLogRepository interface {
	GetDetail(ctx context.Context, id int64) (model.ActivityLogDetail, error)
	ListPendingByFacilitator(ctx context.Context, facilitatorID int64) ([]model.PendingLog, error)
}

type userRepository interface {
	GetByID(ctx context.Context, id int64) (model.User, error)
}

type publisher interface {
	Publish(job queue.Job, strategy retry.Strategy) error
}

// delayedPublisher parks a job on the broker until it becomes due, so the
// delay survives consumer restarts.
type delayedPublisher interface {
	PublishDelayed(job queue.Job, delay time.Duration, strategy retry.Strategy) error
}

// Mailer is the outbound mail gateway.
type Mailer interface {
	Send(to, subject, html string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetEX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Result is what a composer entry point reports back to the queue handler.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Service wires the domain data accessor, the three queues, the mail gateway
// and the dedup/status cache together.
type Service struct {
	logs  activityLogRepository
	users userRepository

	notifications publisher
	reminders     delayedPublisher
	alerts        publisher

	mailer Mailer
	cache  cache
}

func NewService(
	logs activityLogRepository,
	users userRepository,
	notifications publisher,
	reminders delayedPublisher,
	alerts publisher,
	mailer Mailer,
	cache cache,
) *Service {
	return &Service{
		logs:          logs,
		users:         users,
		notifications: notifications,
		reminders:     reminders,
		alerts:        alerts,
		mailer:        mailer,
		cache:         cache,
	}
}

// CreateNotification enqueues an activity_log_submitted job. The job is
// durably recorded on the broker before this returns.
func (s *Service) CreateNotification(ctx context.Context, strategy retry.Strategy, activityLogID int64) error {
	job, err := queue.NewJob(queue.TypeActivityLogSubmitted, time.Time{}, queue.ActivityLogPayload{
		ActivityLogID: activityLogID,
	})
	if err != nil {
		return err
	}

	if err := s.notifications.Publish(job, strategy); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	s.cacheJobStatus(ctx, strategy, job.ID, "queued")
	zlog.Logger.Info().Int64("activity_log_id", activityLogID).Str("job_id", job.ID.String()).Msg("notification queued")

	return nil
}

// CreateReminder schedules a weekly_reminder job timed to the deadline.
// A reminder for the same facilitator and ISO week is enqueued at most once:
// the dedup key is checked before publishing, so re-running the daily pass
// does not stack duplicates.
func (s *Service) CreateReminder(ctx context.Context, strategy retry.Strategy, facilitatorID int64, deadline time.Time) error {
	facilitator, err := s.users.GetByID(ctx, facilitatorID)
	if err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}

	key := s.reminderKey(facilitatorID, deadline)

	if _, err := s.cache.GetWithRetry(ctx, strategy, key); err == nil {
		zlog.Logger.Info().Int64("facilitator_id", facilitatorID).Msg("reminder already scheduled, skipping")
		return nil
	} else if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to check reminder dedup key")
	}

	job, err := queue.NewJob(queue.TypeWeeklyReminder, deadline, queue.ReminderPayload{
		FacilitatorID: facilitatorID,
		Deadline:      deadline,
	})
	if err != nil {
		return err
	}

	delay := time.Until(deadline)

	// The broker holds the job until the deadline, so a worker restart during
	// the wait does not lose it.
	if err := s.reminders.PublishDelayed(job, delay, strategy); err != nil {
		return fmt.Errorf("publish reminder: %w", err)
	}

	// The dedup key expires with the deadline: if the job is ever lost, the
	// next daily pass can schedule a fresh one.
	ttl := delay
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.cache.SetEX(ctx, key, "scheduled", ttl).Err(); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to set reminder dedup key")
	}

	s.cacheJobStatus(ctx, strategy, job.ID, "queued")
	zlog.Logger.Info().Int64("facilitator_id", facilitatorID).Str("email", facilitator.Email).
		Time("deadline", deadline).Msg("reminder scheduled")

	return nil
}

// CreateAlert enqueues a manager_alert job carrying denormalized display data.
func (s *Service) CreateAlert(ctx context.Context, strategy retry.Strategy, managerID int64, alertType string, data queue.AlertData) error {
	if _, err := s.users.GetByID(ctx, managerID); err != nil {
		return fmt.Errorf("create alert: %w", err)
	}

	job, err := queue.NewJob(queue.TypeManagerAlert, time.Time{}, queue.AlertPayload{
		ManagerID: managerID,
		AlertType: alertType,
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}

	if err := s.alerts.Publish(job, strategy); err != nil {
		return fmt.Errorf("publish alert: %w", err)
	}

	s.cacheJobStatus(ctx, strategy, job.ID, "queued")
	zlog.Logger.Info().Int64("manager_id", managerID).Str("alert_type", alertType).Msg("alert queued")

	return nil
}

// SendActivityLogNotification renders and mails the submission summary for
// one activity log. The log can legitimately vanish between enqueue and
// processing; that surfaces as the repository's not-found error.
func (s *Service) SendActivityLogNotification(ctx context.Context, activityLogID int64) (Result, error) {
	detail, err := s.logs.GetDetail(ctx, activityLogID)
	if err != nil {
		return Result{}, fmt.Errorf("activity log notification: %w", err)
	}

	html, err := render(submittedTmpl, detail)
	if err != nil {
		return Result{}, err
	}

	subject := fmt.Sprintf("Activity Log Submitted - Week %d", detail.WeekNumber)
	if err := s.mailer.Send(detail.Facilitator.Email, subject, html); err != nil {
		return Result{}, fmt.Errorf("send activity log notification: %w", err)
	}

	return Result{Success: true}, nil
}

// SendReminderNotification mails the facilitator the list of still-pending
// logs. When everything was submitted since scheduling it is a no-op success,
// not an error, and no mail goes out.
func (s *Service) SendReminderNotification(ctx context.Context, facilitatorID int64, deadline time.Time) (Result, error) {
	facilitator, err := s.users.GetByID(ctx, facilitatorID)
	if err != nil {
		return Result{}, fmt.Errorf("reminder notification: %w", err)
	}

	pending, err := s.logs.ListPendingByFacilitator(ctx, facilitatorID)
	if err != nil {
		return Result{}, fmt.Errorf("reminder notification: %w", err)
	}

	if len(pending) == 0 {
		return Result{Success: true, Message: "No pending logs found"}, nil
	}

	html, err := render(reminderTmpl, reminderContent{
		Name:     facilitator.FullName(),
		Deadline: deadline.Format("2006-01-02"),
		Pending:  pending,
	})
	if err != nil {
		return Result{}, err
	}

	if err := s.mailer.Send(facilitator.Email, "Weekly Activity Log Reminder", html); err != nil {
		return Result{}, fmt.Errorf("send reminder: %w", err)
	}

	return Result{Success: true}, nil
}

// SendManagerAlert mails a manager, selecting the template by alert type.
// Unknown types fall back to a generic dump of the payload.
func (s *Service) SendManagerAlert(ctx context.Context, managerID int64, alertType string, data queue.AlertData) (Result, error) {
	manager, err := s.users.GetByID(ctx, managerID)
	if err != nil {
		return Result{}, fmt.Errorf("manager alert: %w", err)
	}

	content := alertContent{
		Name:      manager.FullName(),
		AlertType: alertType,
		Data:      data,
	}

	var subject string
	var tmplErr error
	var html string

	switch alertType {
	case "missed_deadline":
		subject = "Facilitator Missed Activity Log Deadline"
		html, tmplErr = render(missedDeadlineTmpl, content)
	case "late_submission":
		subject = "Late Activity Log Submission"
		html, tmplErr = render(lateSubmissionTmpl, content)
	default:
		subject = "Activity Tracker Alert"

		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return Result{}, fmt.Errorf("marshal alert data: %w", err)
		}
		content.DataJSON = string(raw)

		html, tmplErr = render(genericAlertTmpl, content)
	}
	if tmplErr != nil {
		return Result{}, tmplErr
	}

	if err := s.mailer.Send(manager.Email, subject, html); err != nil {
		return Result{}, fmt.Errorf("send manager alert: %w", err)
	}

	return Result{Success: true}, nil
}

// SetJobStatus records a job's lifecycle state in the cache. Used by queue
// handlers to mark jobs sent or failed; purely observational.
func (s *Service) SetJobStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) error {
	if err := s.cache.SetWithRetry(ctx, strategy, "job:"+jobID.String(), status); err != nil {
		return fmt.Errorf("set job status: %w", err)
	}

	return nil
}

func (s *Service) cacheJobStatus(ctx context.Context, strategy retry.Strategy, jobID uuid.UUID, status string) {
	if err := s.cache.SetWithRetry(ctx, strategy, "job:"+jobID.String(), status); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", jobID.String()).Msg("failed to cache job status")
	}
}

// reminderKey derives the at-most-once key for the ISO week the reminder
// covers. The deadline sits seven days past the pending week, so step back
// before taking the week number.
func (s *Service) reminderKey(facilitatorID int64, deadline time.Time) string {
	year, wk := week.Current(deadline.AddDate(0, 0, -7))
	return fmt.Sprintf("reminder:%d:%d:%d", facilitatorID, year, wk)
}
