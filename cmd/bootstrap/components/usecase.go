package components

import (
	"salon-scheduling/internal/domain/recurrence"
	"salon-scheduling/internal/domain/scheduling"
	"salon-scheduling/internal/pkg/clock"
	"salon-scheduling/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	scheduling.NewConflictChecker,
	recurrence.NewEngine,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSchedulingQueries,
	),
)
