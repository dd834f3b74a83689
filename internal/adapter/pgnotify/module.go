package pgnotify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
)

// Module provides the ledger change listener.
var Module = fx.Provide(func(cfg *config.Config, logger *slog.Logger) *Listener {
	return NewListener(cfg.DatabaseURI, Channel, logger)
})
