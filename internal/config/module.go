package config

import "go.uber.org/fx"

// Module provides the shop configuration loaded from flags, env and dotenv.
var Module = fx.Provide(Load)
