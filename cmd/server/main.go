package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"calpredict/internal/config"
	"calpredict/internal/handler"
	"calpredict/internal/logger"
	"calpredict/internal/render"
	"calpredict/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Calories Burnt Predictor")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	zlog, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Load the trained artifacts once; they are read-only from here on
	predictionService, err := service.NewPredictionServiceFromFiles(
		cfg.Inference.ScalerPath,
		cfg.Inference.ModelPath,
		zlog.Named("inference"),
	)
	if err != nil {
		log.Fatalf("Failed to load inference artifacts: %v", err)
	}

	log.Println("✅ Model and scaler loaded")
	log.Printf("   - Model: %s", cfg.Inference.ModelPath)
	log.Printf("   - Scaler: %s", cfg.Inference.ScalerPath)
	log.Printf("   - Features: %d", predictionService.NumFeatures())

	// Templates and static assets (see embed.go / static_dev.go)
	templates, static, err := loadAssets(cfg)
	if err != nil {
		log.Fatalf("Failed to load web assets: %v", err)
	}
	renderer, err := render.NewTemplateRenderer(templates)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Initialize handlers
	predictHandler := handler.NewPredictHandler(predictionService, renderer, zlog.Named("http"))
	healthHandler := handler.NewHealthHandler(handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}, predictionService.NumFeatures())

	router := handler.NewRouter(handler.RouterOptions{
		AllowedOrigins: cfg.Origins(),
		Static:         static,
		Logger:         zlog.Named("access"),
	}, predictHandler, healthHandler)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	log.Printf("🚀 Starting server on %s", cfg.Addr())
	log.Printf("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
	log.Println("✅ Server stopped")
}
