package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"investment-service/internal/handler"
	mid "investment-service/internal/middleware"
	"investment-service/internal/repository"
	"investment-service/internal/service"
	"investment-service/pkg/config"
	"investment-service/pkg/database"
	"investment-service/pkg/logger"
	"investment-service/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting investment-service",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", cfg.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if cfg.DB.SeedDemo {
		if err := database.SeedDemoData(db); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
		log.Info("Demo data seeded")
	}

	// Wire repositories, services and handlers
	userRepo := repository.NewUserRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)

	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	investmentHandler := handler.NewInvestmentHandler(service.NewInvestmentService(investmentRepo, userRepo))
	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes - demonstration only, no real credential checks
	authAPI := e.Group("/api/auth")
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/validate-token", authHandler.ValidateToken)
	authAPI.GET("/test-users", authHandler.TestUsers)

	// User API routes
	userAPI := e.Group("/api/users")
	userAPI.GET("", userHandler.List)
	userAPI.GET("/:id", userHandler.Get)
	userAPI.GET("/:id/investments", userHandler.GetInvestments)
	userAPI.POST("", userHandler.Create)
	userAPI.PUT("/:id", userHandler.Update)
	userAPI.DELETE("/:id", userHandler.Delete)

	// Investment API routes
	investmentAPI := e.Group("/api/investments")
	investmentAPI.GET("", investmentHandler.List)
	investmentAPI.GET("/summary", investmentHandler.Summary)
	investmentAPI.GET("/by-type/:type", investmentHandler.GetByType)
	investmentAPI.GET("/by-user/:userId", investmentHandler.GetByUser)
	investmentAPI.GET("/:id", investmentHandler.Get)
	investmentAPI.POST("", investmentHandler.Create)
	investmentAPI.PUT("/:id", investmentHandler.Update)
	investmentAPI.DELETE("/:id", investmentHandler.Delete)

	// Start server
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
