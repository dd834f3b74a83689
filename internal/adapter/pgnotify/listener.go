// Package pgnotify follows PostgreSQL LISTEN/NOTIFY channels.
package pgnotify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Channel is the notification channel written by the change triggers.
const Channel = "ledger_changes"

const defaultRetryDelay = 2 * time.Second

type conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

type connectFunc func(ctx context.Context, dsn string) (conn, error)

func pgxConnect(ctx context.Context, dsn string) (conn, error) {
	c, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Handler receives payloads. Connected runs after every (re)connect, when
// notifications may have been missed.
type Handler interface {
	Changed(payload string)
	Connected()
}

// Listener keeps a dedicated connection subscribed to one channel.
type Listener struct {
	dsn        string
	channel    string
	connect    connectFunc
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewListener creates a listener for channel on the database at dsn.
func NewListener(dsn, channel string, logger *slog.Logger) *Listener {
	return &Listener{
		dsn:        dsn,
		channel:    channel,
		connect:    pgxConnect,
		retryDelay: defaultRetryDelay,
		logger:     logger,
	}
}

// Listen blocks until ctx is done, reconnecting after connection failures.
func (l *Listener) Listen(ctx context.Context, h Handler) error {
	for {
		err := l.session(ctx, h)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.logger.Warn("notification listener disconnected",
			slog.String("channel", l.channel),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *Listener) session(ctx context.Context, h Handler) error {
	c, err := l.connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = c.Close(closeCtx)
	}()

	if _, err := c.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	l.logger.Info("listening for changes", slog.String("channel", l.channel))
	h.Connected()

	for {
		n, err := c.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("wait: %w", err)
		}
		if n.Channel == l.channel {
			h.Changed(n.Payload)
		}
	}
}
