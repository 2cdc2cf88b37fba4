package components

import (
	"salon-scheduling/internal/domain/scheduling"
	"salon-scheduling/internal/infra/pgquery"
	"salon-scheduling/internal/infra/policy"
	"salon-scheduling/internal/infra/readstore"
	"salon-scheduling/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	policyModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BookingQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(scheduling.BookingRepository)),
		),
	),
)

var policyModule = fx.Module("persistence/policy",
	fx.Provide(
		fx.Annotate(
			policy.NewFilePolicyProvider,
			fx.As(new(queries.PolicyProvider)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
