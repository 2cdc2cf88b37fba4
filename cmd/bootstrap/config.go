package bootstrap

import (
	"salon-scheduling/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SchedulingConfig {
			return cfg.Scheduling
		},
	),
)
