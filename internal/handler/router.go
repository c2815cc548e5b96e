package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dormgate/internal/handler/api"
	"dormgate/internal/handler/middleware"
	"dormgate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, reservationHandler *api.ReservationHandler, adminHandler *api.AdminHandler, identityMiddleware *middleware.IdentityMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, reservationHandler, adminHandler, identityMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, reservationHandler *api.ReservationHandler, adminHandler *api.AdminHandler, identityMiddleware *middleware.IdentityMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(identityMiddleware.RequireIdentity())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/buildings", Handler: reservationHandler.ListBuildings},
			{Method: http.MethodGet, Path: "/buildings/:id/resources", Handler: reservationHandler.ListResources},
		})

		sessions := apiGroup.Group("/booking/sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateSession},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetSession},
				{Method: http.MethodPut, Path: "/:id/building", Handler: bookingHandler.SetBuilding},
				{Method: http.MethodPut, Path: "/:id/resource", Handler: bookingHandler.SetResource},
				{Method: http.MethodPut, Path: "/:id/date", Handler: bookingHandler.SetDate},
				{Method: http.MethodPut, Path: "/:id/slot", Handler: bookingHandler.ChooseSlot},
				{Method: http.MethodPut, Path: "/:id/times", Handler: bookingHandler.SetTimeRange},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: bookingHandler.Submit},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteSession},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListMine},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(identityMiddleware.RequireRole(middleware.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: adminHandler.List},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: adminHandler.Cancel},
			})
		}
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
