package components

import (
	"tutorlink/internal/infra/db"
	"tutorlink/internal/infra/notify"
	"tutorlink/internal/infra/readstore"
	"tutorlink/internal/infra/uow"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewTutoryReadStore,
			fx.As(new(queries.TutoryReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewSubjectReadStore,
			fx.As(new(queries.SubjectReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// Notification gateway
		fx.Annotate(
			notify.NewGateway,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
