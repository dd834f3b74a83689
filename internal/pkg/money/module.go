package money

import (
	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
)

// Module provides the shop's money formatter.
var Module = fx.Provide(func(cfg *config.Config) (*Formatter, error) {
	return NewFormatter(cfg.Currency, cfg.Locale)
})
