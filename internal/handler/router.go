package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"glisten-lounge/internal/domain/user"
	"glisten-lounge/internal/handler/api"
	"glisten-lounge/internal/handler/middleware"
	"glisten-lounge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Catalog      *api.CatalogHandler
	Bag          *api.BagHandler
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Notify       *api.NotifyHandler
	Feed         *api.FeedHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Storefront reads are public; catalog writes are dashboard-only.
		addCatalogRoutes(apiGroup, "/services", "service", h.Catalog, authMiddleware)
		addCatalogRoutes(apiGroup, "/products", "product", h.Catalog, authMiddleware)

		bag := apiGroup.Group("/bag")
		{
			addRoutes(bag, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Bag.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Bag.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Bag.AddItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Bag.RemoveItem},
			})
		}

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Availability.Slots},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Availability.Calendar},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Submit},
			})

			staffOnly := bookings.Group("")
			staffOnly.Use(authMiddleware.RequireAuth())
			addRoutes(staffOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/notify", Handler: h.Notify.Forward},
		})

		feed := apiGroup.Group("/feed")
		feed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(feed, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Feed.Bookings},
			})
		}
	}
}

func addCatalogRoutes(g *gin.RouterGroup, path, kind string, h *api.CatalogHandler, authMiddleware *middleware.AuthMiddleware) {
	group := g.Group(path)

	addRoutes(group, []route{
		{Method: http.MethodGet, Path: "", Handler: h.List(kind)},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get(kind)},
	})

	adminOnly := group.Group("")
	adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
	addRoutes(adminOnly, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Create(kind)},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Update(kind)},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete(kind)},
	})
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
