package logger

import "go.uber.org/fx"

// Module provides the shared JSON slog logger.
var Module = fx.Provide(New)
