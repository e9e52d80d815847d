package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions configures the HTTP surface
type RouterOptions struct {
	AllowedOrigins []string
	Static         http.FileSystem // mounted read-only at /static when non-nil
	Logger         *zap.Logger
}

// NewRouter wires middleware and routes into a gin engine
func NewRouter(opts RouterOptions, predictHandler *PredictHandler, healthHandler *HealthHandler) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = opts.AllowedOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"*"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler.Health)
	router.GET("/version", healthHandler.Version)

	router.GET("/", predictHandler.Index)
	router.POST("/predict", predictHandler.Predict)

	if opts.Static != nil {
		router.StaticFS("/static", opts.Static)
	}

	return router
}
