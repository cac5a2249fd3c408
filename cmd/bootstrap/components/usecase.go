package components

import (
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/usecase"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewTutoryCommands,
		commands.NewOrderCommands,
		commands.NewReviewCommands,
		commands.NewNotificationCommands,
		commands.NewDeviceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTutoryQueries,
		queries.NewOrderQueries,
		queries.NewReviewQueries,
		queries.NewSubjectQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
