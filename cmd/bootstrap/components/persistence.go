package components

import (
	"referral-rewards/internal/infra/notify"
	"referral-rewards/internal/infra/readstore"
	"referral-rewards/internal/infra/repository"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/infra/uow"
	"referral-rewards/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Voucher
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VoucherReadQueries)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		// Ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LedgerReadQueries)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
	),
)

// Voucher and ledger writers live inside the unit of work; only the
// notification log is written outside a transaction.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notify.AttemptRecorder)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
