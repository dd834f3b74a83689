package worker

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/pgnotify"
)

// ChangeSource delivers change notifications to a handler until ctx is done.
type ChangeSource interface {
	Listen(ctx context.Context, h pgnotify.Handler) error
}

// Syncer rebuilds the in-memory ledger from the store.
type Syncer interface {
	LoadAll(ctx context.Context) error
	Reload(ctx context.Context, table string) error
}

// Refresher turns table change notifications into ledger reloads. Bursts of
// notifications for the same table collapse into one reload, and a reconnect
// or the resync ticker triggers a full reload.
type Refresher struct {
	source   ChangeSource
	sync     Syncer
	interval time.Duration
	logger   *slog.Logger

	pending map[string]struct{}
	full    bool
	pendMu  sync.Mutex
	wake    chan struct{}

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRefresher constructs refresher. A non-positive interval disables the periodic resync.
func NewRefresher(source ChangeSource, sync Syncer, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		source:   source,
		sync:     sync,
		interval: interval,
		logger:   logger,
		pending:  make(map[string]struct{}),
		wake:     make(chan struct{}, 1),
	}
}

// Changed implements pgnotify.Handler.
func (r *Refresher) Changed(table string) {
	r.pendMu.Lock()
	r.pending[table] = struct{}{}
	r.pendMu.Unlock()
	r.signal()
}

// Connected implements pgnotify.Handler.
func (r *Refresher) Connected() {
	r.pendMu.Lock()
	r.full = true
	r.pendMu.Unlock()
	r.signal()
}

func (r *Refresher) signal() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Start launches the listener and the reload loop.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(2)
	go r.listen(runCtx)
	go r.loop(runCtx)
}

// Stop waits for the listener and the reload loop to exit.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Refresher) listen(ctx context.Context) {
	defer r.wg.Done()
	if err := r.source.Listen(ctx, r); err != nil && !errors.Is(err, context.Canceled) {
		r.logger.Error("change listener stopped", slog.String("error", err.Error()))
	}
}

func (r *Refresher) loop(ctx context.Context) {
	defer r.wg.Done()

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			r.loadAll(ctx)
		case <-r.wake:
			r.flush(ctx)
		}
	}
}

func (r *Refresher) flush(ctx context.Context) {
	r.pendMu.Lock()
	full := r.full
	tables := make([]string, 0, len(r.pending))
	for table := range r.pending {
		tables = append(tables, table)
	}
	r.full = false
	r.pending = make(map[string]struct{})
	r.pendMu.Unlock()

	if full {
		r.loadAll(ctx)
		return
	}
	sort.Strings(tables)
	for _, table := range tables {
		if err := r.sync.Reload(ctx, table); err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Error("ledger reload failed", slog.String("table", table), slog.String("error", err.Error()))
		}
	}
}

func (r *Refresher) loadAll(ctx context.Context) {
	if err := r.sync.LoadAll(ctx); err != nil && ctx.Err() == nil {
		r.logger.Error("ledger resync failed", slog.String("error", err.Error()))
	}
}
