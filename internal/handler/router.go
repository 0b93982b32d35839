package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"suitenest/internal/domain/user"
	"suitenest/internal/handler/api"
	"suitenest/internal/handler/middleware"
	"suitenest/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Room    *api.RoomHandler
	Booking *api.BookingHandler
}

type Tracing struct {
	Provider   trace.TracerProvider
	Propagator propagation.TextMapPropagator
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, tracing Tracing, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, tracing)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, tracing Tracing) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewTracingMiddleware(tracing.Provider, tracing.Propagator))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register-user", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})
	}

	rooms := engine.Group("/rooms")
	{
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "/available-rooms", Handler: h.Room.ListAvailableRooms},
			{Method: http.MethodGet, Path: "/all-rooms", Handler: h.Room.ListRooms},
			{Method: http.MethodGet, Path: "/room/types", Handler: h.Room.ListRoomTypes},
			{Method: http.MethodGet, Path: "/room/:id", Handler: h.Room.GetRoom},
			{Method: http.MethodPost, Path: "/add/new-room", Handler: h.Room.AddRoom, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			{Method: http.MethodPut, Path: "/update/:id", Handler: h.Room.UpdateRoom, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			{Method: http.MethodDelete, Path: "/delete/room/:id", Handler: h.Room.DeleteRoom, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
		})
	}

	bookings := engine.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/confirmation/:code", Handler: h.Booking.GetByConfirmationCode},
			{Method: http.MethodDelete, Path: "/booking/:id/delete", Handler: h.Booking.CancelBooking},
			{Method: http.MethodPost, Path: "/room/:roomId/booking", Handler: h.Booking.BookRoom, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/user/:userId/bookings", Handler: h.Booking.ListUserBookings, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/all-bookings", Handler: h.Booking.ListBookings, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
