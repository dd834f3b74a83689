package router

import "go.uber.org/fx"

// Module provides the API engine.
var Module = fx.Provide(Setup)
