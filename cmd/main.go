package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/handler"
	mid "github.com/skywhalehq/gomongolia-guide-admin-web/internal/middleware"
	"github.com/skywhalehq/gomongolia-guide-admin-web/internal/snapshot"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/config"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/database"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/jwtutil"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/logger"
	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/upstream"
	"github.com/skywhalehq/gomongolia-guide-admin-web/prometheus"
)

func main() {
	// Load .env file; fall back to environment variables set by the
	// deployment when the file is absent
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting guide-admin dashboard service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port),
		zap.String("upstream", appConfig.Upstream.BaseURL))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.Auth)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Select the snapshot backend
	var snapshots snapshot.Store
	if appConfig.Snapshot.Driver == "postgres" {
		if err := database.InitDB(appConfig, log); err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		log.Info("Database connection established")
		snapshots = snapshot.NewDatabaseStore(database.GetDB())
	} else {
		log.Info("Using in-memory snapshot store")
		snapshots = snapshot.NewMemoryStore()
	}

	// Initialize the platform API client and dashboard handler
	client := upstream.NewClient(&appConfig.Upstream, log)
	dashboardHandler := handler.NewDashboardHandler(client, snapshots)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware(log))

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Dashboard API routes
	api := e.Group("/api/dashboard")
	if appConfig.Auth.Enabled {
		api.Use(mid.AuthMiddleware)
		log.Info("Operator authentication enabled on dashboard routes")
	}
	api.GET("/users", dashboardHandler.ListUsers)
	api.GET("/users/:id", dashboardHandler.GetUser)
	api.GET("/trips", dashboardHandler.ListTrips)
	api.GET("/trips/:id", dashboardHandler.GetTrip)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
