package components

import (
	"facility-parking/internal/handler"
	"facility-parking/internal/handler/api"
	"facility-parking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewParkingHandler,
		api.NewReceiptHandler,
		api.NewAuthHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
