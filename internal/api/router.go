package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gigstage/booking-system/internal/api/handler"
	"github.com/gigstage/booking-system/internal/api/middleware"
	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/service"
	"github.com/gigstage/booking-system/internal/infrastructure/config"
	mongorepo "github.com/gigstage/booking-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/gigstage/booking-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Repositories ---
	users := mongorepo.NewUserRepository(db)
	artists := mongorepo.NewArtistRepository(db)
	events := mongorepo.NewEventRepository(db)
	bookings := mongorepo.NewBookingRepository(db)
	reviews := mongorepo.NewReviewRepository(db)

	// --- Services ---
	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.JWTExpire, log)
	artistService := service.NewArtistService(artists, reviews, log)
	eventService := service.NewEventService(events, log)
	bookingService := service.NewBookingService(bookings, events, artists, users, redisinfra.NewPaymentLock(rdb), log)
	reviewService := service.NewReviewService(reviews, bookings, users, artists, events, artistService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	artistHandler := handler.NewArtistHandler(artistService)
	eventHandler := handler.NewEventHandler(eventService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	auth := middleware.Auth(cfg.JWTSecret)
	isAdmin := middleware.RequireRoles(domain.RoleAdmin)
	isArtistOrAdmin := middleware.RequireRoles(domain.RoleArtist, domain.RoleAdmin)
	isArtist := middleware.RequireRoles(domain.RoleArtist)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, auth)
	authGroup.PUT("/me", authHandler.UpdateMe, auth)

	// --- Artist routes ---
	artistGroup := e.Group("/api/artists")
	artistGroup.GET("", artistHandler.List)
	artistGroup.GET("/:id", artistHandler.Get)
	artistGroup.POST("", artistHandler.Create, auth, isArtistOrAdmin)
	artistGroup.PUT("/:id", artistHandler.Update, auth)
	artistGroup.DELETE("/:id", artistHandler.Delete, auth)
	artistGroup.GET("/:id/reviews", artistHandler.Reviews)
	artistGroup.GET("/:id/availability", artistHandler.Availability)
	artistGroup.PUT("/:id/availability", artistHandler.UpdateAvailability, auth, isArtist)

	// --- Event routes ---
	eventGroup := e.Group("/api/events")
	eventGroup.GET("", eventHandler.List)
	eventGroup.GET("/:id", eventHandler.Get)
	eventGroup.POST("", eventHandler.Create, auth)
	eventGroup.PUT("/:id", eventHandler.Update, auth)
	eventGroup.DELETE("/:id", eventHandler.Delete, auth)

	// --- Booking routes (all authenticated) ---
	bookingGroup := e.Group("/api/bookings", auth)
	bookingGroup.GET("", bookingHandler.List)
	bookingGroup.POST("", bookingHandler.Create)
	bookingGroup.GET("/:id", bookingHandler.Get)
	bookingGroup.PUT("/:id", bookingHandler.UpdateStatus)
	bookingGroup.DELETE("/:id", bookingHandler.Cancel)
	bookingGroup.POST("/:id/payment", bookingHandler.ProcessPayment)

	// --- Review routes ---
	reviewGroup := e.Group("/api/reviews")
	reviewGroup.GET("", reviewHandler.List, auth, isAdmin)
	reviewGroup.GET("/:id", reviewHandler.Get)
	reviewGroup.POST("", reviewHandler.Create, auth)
	reviewGroup.DELETE("/:id", reviewHandler.Delete, auth)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
