package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/sms"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

// Module provides the dispatcher both as itself and as the use case notifier.
var Module = fx.Provide(
	newDispatcher,
	func(d *Dispatcher) usecase.Notifier { return d },
)

type dispatcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Sender sms.Sender
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Config.NotifyQueueSize, p.Logger,
		LogSink{Logger: p.Logger},
		SMSSink{Sender: p.Sender},
	)
}
