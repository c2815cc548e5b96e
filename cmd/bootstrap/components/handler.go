package components

import (
	"dormgate/internal/handler"
	"dormgate/internal/handler/api"
	"dormgate/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		middleware.NewIdentityMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
