// Package queue declares the three durable job queues the notification
// pipeline runs on: immediate submission notices, time-delayed facilitator
// reminders and manager alerts. Each queue gets its own exchange, a retry
// queue that dead-letters back into the main queue, and a DLQ for jobs that
// exhausted their attempts.
package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Job types consumed by the worker.
const (
	TypeActivityLogSubmitted = "activity_log_submitted"
	TypeWeeklyReminder       = "weekly_reminder"
	TypeManagerAlert         = "manager_alert"
)

// Job is the queue-resident envelope. It is durable within the broker until
// completed or exhausted; it is not part of the domain model.
type Job struct {
	ID      uuid.UUID       `json:"id"`
	Type    string          `json:"type"`
	RunAt   time.Time       `json:"run_at"` // zero value on the wire means immediate
	Payload json.RawMessage `json:"payload"`
}

// ActivityLogPayload is the body of an activity_log_submitted job.
type ActivityLogPayload struct {
	ActivityLogID int64 `json:"activityLogId"`
}

// ReminderPayload is the body of a weekly_reminder job.
type ReminderPayload struct {
	FacilitatorID int64     `json:"facilitatorId"`
	Deadline      time.Time `json:"deadline"`
}

// AlertPayload is the body of a manager_alert job.
type AlertPayload struct {
	ManagerID int64     `json:"managerId"`
	AlertType string    `json:"alertType"`
	Data      AlertData `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertData carries the denormalized display data alert templates render.
// Producers fill only the fields their alert type uses.
type AlertData struct {
	FacilitatorName string `json:"facilitatorName,omitempty"`
	FacilitatorID   int64  `json:"facilitatorId,omitempty"`
	ModuleName      string `json:"moduleName,omitempty"`
	WeekNumber      int    `json:"weekNumber,omitempty"`
	Year            int    `json:"year,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
	SubmittedAt     string `json:"submittedAt,omitempty"`
}

// NewJob wraps a payload into an envelope. A zero runAt publishes an
// immediately visible job.
func NewJob(jobType string, runAt time.Time, payload interface{}) (Job, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return Job{
		ID:      uuid.New(),
		Type:    jobType,
		RunAt:   runAt,
		Payload: body,
	}, nil
}

// Queue is one named durable queue with its publisher and consumer ends.
type Queue struct {
	name      string
	delayName string
	publisher *rabbitmq.Publisher
	delayed   *rabbitmq.Publisher
	consumer  *rabbitmq.Consumer
}

// New declares the full topology for one named queue on the given channel:
// <name>-exchange, <name>-queue (dead-lettering into <name>-dlq),
// <name>-retry (ttl back into the main queue), <name>-delay (per-message ttl
// back into the main queue, for deferred jobs) and <name>-dlq.
func New(ch *rabbitmq.Channel, name string) (*Queue, error) {
	exchangeName := name + "-exchange"
	mainName := name + "-queue"
	retryName := name + "-retry"
	delayName := name + "-delay"
	dlqName := name + "-dlq"

	exchange := rabbitmq.NewExchange(exchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(dlqName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": mainName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(retryName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	// No queue-level ttl here: each deferred job carries its own expiration
	// and dead-letters into the main queue when it becomes due.
	delayArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": mainName,
	}

	_, err = qm.DeclareQueue(delayName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    delayArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare delay queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}

	mainQ, err := qm.DeclareQueue(mainName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, name, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	delayedPub := rabbitmq.NewPublisher(ch, "") // default exchange routes by queue name
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &Queue{
		name:      name,
		delayName: delayName,
		publisher: pub,
		delayed:   delayedPub,
		consumer:  cons,
	}, nil
}

// Name returns the queue's configured name.
func (q *Queue) Name() string {
	return q.name
}

// Publish durably records a job on the broker before returning.
func (q *Queue) Publish(job Job, strategy retry.Strategy) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.publisher.PublishWithRetry(body, q.name, "application/json", strategy)
}

// PublishDelayed parks a job on the delay queue with a per-message ttl, so the
// broker holds it until it becomes due and survives consumer restarts in the
// meantime. RabbitMQ expires messages at the queue head only; deferred jobs
// all carry near-uniform delays, so earlier-published jobs expire first.
func (q *Queue) PublishDelayed(job Job, delay time.Duration, strategy retry.Strategy) error {
	if delay <= 0 {
		return q.Publish(job, strategy)
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.delayed.PublishWithRetry(body, q.delayName, "application/json", strategy,
		rabbitmq.PublishingOptions{Expiration: delay})
}

// Consume decodes broker deliveries into Job envelopes on out. Malformed
// deliveries are logged and dropped.
func (q *Queue) Consume(out chan<- Job, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var job Job
			if err := json.Unmarshal(m, &job); err != nil {
				zlog.Logger.Error().Err(err).Str("queue", q.name).Msg("failed to unmarshal job")
				continue
			}

			out <- job
		}
	}()

	return q.consumer.ConsumeWithRetry(msgChan, strategy)
}
