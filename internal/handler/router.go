package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"movie-rental-api/internal/domain/user"
	"movie-rental-api/internal/handler/api"
	"movie-rental-api/internal/handler/middleware"
	"movie-rental-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	genreHandler *api.GenreHandler,
	customerHandler *api.CustomerHandler,
	movieHandler *api.MovieHandler,
	rentalHandler *api.RentalHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, userHandler, genreHandler, customerHandler, movieHandler, rentalHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	genreHandler *api.GenreHandler,
	customerHandler *api.CustomerHandler,
	movieHandler *api.MovieHandler,
	rentalHandler *api.RentalHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: userHandler.Register},
				{Method: http.MethodGet, Path: "/me", Handler: userHandler.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		genres := apiGroup.Group("/genres")
		{
			addRoutes(genres, []route{
				{Method: http.MethodGet, Path: "", Handler: genreHandler.ListGenres},
				{Method: http.MethodGet, Path: "/:id", Handler: genreHandler.GetGenre},
				{Method: http.MethodPost, Path: "", Handler: genreHandler.CreateGenre, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: genreHandler.UpdateGenre, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: genreHandler.DeleteGenre, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(requireAuth)
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: customerHandler.ListCustomers},
				{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.GetCustomer},
				{Method: http.MethodGet, Path: "/:id/rentals", Handler: customerHandler.ListCustomerRentals},
				{Method: http.MethodPost, Path: "", Handler: customerHandler.CreateCustomer},
				{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.UpdateCustomer},
				{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.DeleteCustomer, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		movies := apiGroup.Group("/movies")
		{
			addRoutes(movies, []route{
				{Method: http.MethodGet, Path: "", Handler: movieHandler.ListMovies},
				{Method: http.MethodGet, Path: "/:id", Handler: movieHandler.GetMovie},
				{Method: http.MethodPost, Path: "", Handler: movieHandler.CreateMovie, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: movieHandler.UpdateMovie, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: movieHandler.DeleteMovie, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(requireAuth)
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.CheckOut},
				{Method: http.MethodGet, Path: "", Handler: rentalHandler.ListRentals},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.GetRental},
			})
		}

		returns := apiGroup.Group("/returns")
		returns.Use(requireAuth)
		{
			addRoutes(returns, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.ReturnRental},
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
