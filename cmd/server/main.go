package main

import (
	"alcyxob/runtrack/internal/api"
	"alcyxob/runtrack/internal/config"
	"alcyxob/runtrack/internal/log"
	"alcyxob/runtrack/internal/repository/mongo"
	"alcyxob/runtrack/internal/service"
	"alcyxob/runtrack/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Runtrack API
// @version 1.0
// @description API for logging runs and daily goals and reviewing weekly training.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if err := log.Init(cfg.Log.Debug); err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer log.Sync()
	log.Infow("Starting Runtrack server", "address", cfg.Server.Address, "database", cfg.Database.Name, "dashboardWeeks", cfg.Dashboard.Weeks)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Infof("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.Errorf("Index creation failed: %v", err)
			return
		}
		log.Infof("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 30*time.Second)
	fileStorage, err := storage.NewS3Storage(storageCtx, cfg.S3)
	storageCancel()
	if err != nil {
		log.Fatalf("Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	runRepo := mongo.NewMongoRunRepository(appDB)
	goalRepo := mongo.NewMongoGoalRepository(appDB)
	exportRepo := mongo.NewMongoExportRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	runService := service.NewRunService(runRepo, goalRepo)
	dashboardService := service.NewDashboardService(runService, cfg.Dashboard.Weeks)
	exportService := service.NewExportService(dashboardService, exportRepo, fileStorage)

	// --- Initialize Gin Engine ---
	if !cfg.Log.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware

	api.SetupRoutes(router, cfg.JWT.Secret, api.Services{
		Auth:      authService,
		Runs:      runService,
		Dashboard: dashboardService,
		Exports:   exportService,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infof("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Infof("Server exiting.")
}
