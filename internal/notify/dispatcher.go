package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/sms"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

const deliveryTimeout = 10 * time.Second

// Dispatcher queues notifications and delivers them to every sink from a
// background goroutine. Notify never blocks; a full queue drops the message.
type Dispatcher struct {
	sinks  []Sink
	logger *slog.Logger
	queue  chan model.Notification

	mu      sync.Mutex
	wg      sync.WaitGroup
	running bool
	closed  bool
}

// NewDispatcher constructs a dispatcher with a bounded queue.
func NewDispatcher(queueSize int, logger *slog.Logger, sinks ...Sink) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		sinks:  sinks,
		logger: logger,
		queue:  make(chan model.Notification, queueSize),
	}
}

// Notify enqueues n.
func (d *Dispatcher) Notify(ctx context.Context, n model.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("notification dropped, dispatcher stopped", slog.String("title", n.Title))
		return
	}
	select {
	case d.queue <- n:
	default:
		d.logger.Warn("notification dropped, queue full", slog.String("title", n.Title))
	}
}

// Start launches delivery. Deliveries run on their own timeout and outlive
// the caller so Stop can drain the queue.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running || d.closed {
		return
	}
	d.running = true
	d.wg.Add(1)
	go d.run()
}

// Stop delivers what is queued and waits for the goroutine to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()
	for _, sink := range d.sinks {
		err := sink.Deliver(ctx, n)
		switch {
		case err == nil, errors.Is(err, sms.ErrDisabled):
		default:
			var limited sms.TooManyRequestsError
			if errors.As(err, &limited) {
				d.logger.Warn("sms rate limited", slog.String("title", n.Title))
				continue
			}
			d.logger.Error("notification delivery failed", slog.String("title", n.Title), slog.String("error", err.Error()))
		}
	}
}
