package components

import (
	"salon-scheduling/internal/handler"
	"salon-scheduling/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSchedulingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
