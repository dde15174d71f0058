package components

import (
	"quotation-portal/internal/infra/db"
	"quotation-portal/internal/infra/readstore"
	"quotation-portal/internal/infra/uow"
	"quotation-portal/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Quotation read side (pool-bound, outside transactions)
		fx.Annotate(
			readstore.NewQuotationReadStore,
			fx.As(new(queries.QuotationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
