package components

import (
	"tablebook/internal/handler"
	"tablebook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
