package components

import (
	"suitenest/internal/handler"
	"suitenest/internal/handler/api"
	"suitenest/internal/handler/middleware"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
		newTracing,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(auth *api.AuthHandler, room *api.RoomHandler, booking *api.BookingHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Room:    room,
		Booking: booking,
	}
}

func newTracing(tp trace.TracerProvider, prop propagation.TextMapPropagator) handler.Tracing {
	return handler.Tracing{
		Provider:   tp,
		Propagator: prop,
	}
}
