// Package notify fans notifications out to the operator log and to clients.
package notify

import (
	"context"
	"log/slog"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/sms"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// Sink delivers a notification somewhere.
type Sink interface {
	Deliver(ctx context.Context, n model.Notification) error
}

// LogSink writes every notification to the structured log.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Deliver(ctx context.Context, n model.Notification) error {
	level := slog.LevelInfo
	switch n.Severity {
	case model.SeverityWarning:
		level = slog.LevelWarn
	case model.SeverityError:
		level = slog.LevelError
	}
	s.Logger.Log(ctx, level, n.Title, slog.String("message", n.Message), slog.Bool("client", n.Recipient != ""))
	return nil
}

// SMSSink texts notifications that name a recipient.
type SMSSink struct {
	Sender sms.Sender
}

func (s SMSSink) Deliver(ctx context.Context, n model.Notification) error {
	if n.Recipient == "" {
		return nil
	}
	return s.Sender.Send(ctx, n.Recipient, n.Message)
}
