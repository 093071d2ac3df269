package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/projectdesk/internal/adapter/notify"
	"github.com/polkiloo/projectdesk/internal/domain/model"
)

const maxRetryAfter = 30 * time.Second

// Dispatcher delivers events to a notifier from a bounded queue using a pool of workers.
type Dispatcher struct {
	notifier  notify.Notifier
	workers   int
	queueSize int
	timeout   time.Duration
	logger    *slog.Logger

	jobs    chan model.Event
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.RWMutex
	running bool
}

// NewDispatcher constructs event dispatcher worker pool.
func NewDispatcher(notifier notify.Notifier, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		notifier:  notifier,
		workers:   workers,
		queueSize: queueSize,
		timeout:   15 * time.Second,
		logger:    logger,
	}
}

// Publish enqueues the event without blocking. Events are dropped when the
// queue is full or the dispatcher is not running.
func (d *Dispatcher) Publish(event model.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.running {
		d.logger.Warn("notification dropped, dispatcher stopped", slog.String("kind", string(event.Kind)), slog.Int64("id", event.RecordID))
		return
	}

	select {
	case d.jobs <- event:
	default:
		d.logger.Warn("notification dropped, queue full", slog.String("kind", string(event.Kind)), slog.Int64("id", event.RecordID))
	}
}

// Start launches background delivery.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.jobs = make(chan model.Event, d.queueSize)
	d.running = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx, d.jobs)
	}
}

// Stop stops accepting events, delivers what is already queued and waits for
// all workers to finish. Cancelling ctx abandons the remaining queue.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	close(d.jobs)
	cancel := d.cancel
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		cancel()
		return nil
	case <-ctx.Done():
		cancel()
		<-done
		return ctx.Err()
	}
}

func (d *Dispatcher) worker(ctx context.Context, jobs <-chan model.Event) {
	defer d.wg.Done()
	for event := range jobs {
		if ctx.Err() != nil {
			continue
		}
		d.deliver(ctx, event)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event model.Event) {
	err := d.notify(ctx, event)

	var tooMany notify.TooManyRequestsError
	if errors.As(err, &tooMany) {
		wait := min(tooMany.RetryAfter, maxRetryAfter)
		d.logger.Warn("notification rate limited", slog.Duration("retry_after", wait))
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		err = d.notify(ctx, event)
	}

	if err != nil {
		d.logger.Error("notification failed",
			slog.String("kind", string(event.Kind)),
			slog.Int64("id", event.RecordID),
			slog.String("error", err.Error()),
		)
	}
}

func (d *Dispatcher) notify(ctx context.Context, event model.Event) error {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return d.notifier.Notify(callCtx, event)
}
