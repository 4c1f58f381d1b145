package components

import (
	"facility-parking/internal/infra/db"
	"facility-parking/internal/infra/readstore"
	repo_impl "facility-parking/internal/infra/repository"
	"facility-parking/internal/usecase/commands"
	"facility-parking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repo_impl.NewReceiptRepository,
			fx.As(new(commands.ReceiptWriter)),
		),
		fx.Annotate(
			repo_impl.NewAdminRepository,
			fx.As(new(commands.AdminCredentialStore)),
		),
		// Read side
		fx.Annotate(
			readstore.NewReceiptReadStore,
			fx.As(new(queries.ReceiptReadStore)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
