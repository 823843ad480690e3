package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/port-russell/marina-api/docs"
	"github.com/port-russell/marina-api/internal/api/handler"
	"github.com/port-russell/marina-api/internal/api/middleware"
	"github.com/port-russell/marina-api/internal/api/render"
	"github.com/port-russell/marina-api/internal/core/service"
	"github.com/port-russell/marina-api/internal/infrastructure/config"
	mongodb "github.com/port-russell/marina-api/internal/infrastructure/db/mongo"
	redisdb "github.com/port-russell/marina-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marina"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	catwayRepo := mongodb.NewCatwayRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)

	hasher := service.NewBcryptHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)
	catwayService := service.NewCatwayService(catwayRepo, log)
	reservationService := service.NewReservationService(
		reservationRepo, catwayRepo, redisdb.NewSubmitGuard(rdb), log)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	userHandler := handler.NewUserHandler(userService)
	catwayHandler := handler.NewCatwayHandler(catwayService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	pageHandler := handler.NewPageHandler(reservationService)

	authGate := middleware.Auth(tokens)

	// --- Public routes ---
	e.GET("/", pageHandler.Home)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes ---
	e.GET("/dashboard", pageHandler.Dashboard, authGate)

	users := e.Group("/users", authGate)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	catways := e.Group("/catways", authGate)
	catways.POST("", catwayHandler.Create)
	catways.GET("", catwayHandler.List)
	catways.GET("/:id", catwayHandler.Get)
	catways.PUT("/:id", catwayHandler.Update)
	catways.DELETE("/:id", catwayHandler.Delete)

	catways.POST("/:id/reservations", reservationHandler.Create)
	catways.GET("/:id/reservations", reservationHandler.List)
	catways.GET("/:id/reservations/:idReservation", reservationHandler.Get)
	catways.DELETE("/:id/reservations/:idReservation", reservationHandler.Delete)

	return e, nil
}
