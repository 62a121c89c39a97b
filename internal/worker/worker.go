// Package worker runs the long-lived consumer process that drains the
// notifications, reminders and alerts queues into their handlers.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
)

//go:generate mockgen -source=worker.go -destination=../mocks/worker/mock.go -package=mocks

type jobQueue interface {
	Name() string
	Consume(out chan<- queue.Job, strategy retry.Strategy) error
}

type jobHandler interface {
	Handle(ctx context.Context, job queue.Job, strategy retry.Strategy)
}

// registration pairs one queue with the handler for its job type.
type registration struct {
	queue   jobQueue
	handler jobHandler
}

// Worker fans each registered queue into its own pool of handler goroutines.
// It holds no persistent state between jobs.
type Worker struct {
	registrations []registration
}

func New() *Worker {
	return &Worker{}
}

// Register attaches a handler to a queue. Must be called before Run.
func (w *Worker) Register(q jobQueue, h jobHandler) {
	w.registrations = append(w.registrations, registration{queue: q, handler: h})
}

// Run consumes all registered queues until ctx is cancelled. workerCount
// handler goroutines are started per queue, so handlers for different queues
// run concurrently; no handler mutates domain state, so that is safe.
func (w *Worker) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup

	for _, reg := range w.registrations {
		jobChan := make(chan queue.Job, workerCount*10)

		go func(reg registration) {
			if err := reg.queue.Consume(jobChan, strategy); err != nil {
				zlog.Logger.Error().Err(err).Str("queue", reg.queue.Name()).Msg("failed to consume jobs")
			}
		}(reg)

		wg.Add(workerCount)
		for i := 0; i < workerCount; i++ {
			go func(reg registration, id int) {
				defer wg.Done()

				zlog.Logger.Printf("%s worker-%d started", reg.queue.Name(), id)

				for {
					select {
					case <-ctx.Done():
						zlog.Logger.Printf("%s worker-%d shutting down", reg.queue.Name(), id)
						return
					case job, ok := <-jobChan:
						if !ok {
							zlog.Logger.Printf("%s worker-%d channel closed, shutting down", reg.queue.Name(), id)
							return
						}

						if !w.waitUntilDue(ctx, job) {
							return
						}

						reg.handler.Handle(ctx, job, strategy)
					}
				}
			}(reg, i)
		}
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("worker stopped")
}

// waitUntilDue blocks until a job's RunAt has passed. The broker already
// holds deferred jobs until they are due, so in practice this only absorbs
// clock skew between broker and worker; immediate jobs pass straight through.
// Returns false when the context was cancelled while waiting.
func (w *Worker) waitUntilDue(ctx context.Context, job queue.Job) bool {
	delay := time.Until(job.RunAt)
	if delay <= 0 {
		return true
	}

	zlog.Logger.Info().Str("job_id", job.ID.String()).Dur("delay", delay).Msg("job delayed, waiting")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
