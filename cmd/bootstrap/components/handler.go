package components

import (
	"tutorlink/internal/handler"
	"tutorlink/internal/handler/api"
	"tutorlink/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTutoryHandler,
		api.NewOrderHandler,
		api.NewReviewHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
