package components

import (
	"movie-rental-api/internal/handler"
	"movie-rental-api/internal/handler/api"
	"movie-rental-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewGenreHandler,
		api.NewCustomerHandler,
		api.NewMovieHandler,
		api.NewRentalHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
