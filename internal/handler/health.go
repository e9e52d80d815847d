package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BuildInfo carries the version metadata injected at link time
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// HealthHandler serves the operational endpoints
type HealthHandler struct {
	build    BuildInfo
	features int
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(build BuildInfo, features int) *HealthHandler {
	return &HealthHandler{build: build, features: features}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    "calorie-predictor",
		"features":   h.features,
		"version":    h.build.Version,
		"build_time": h.build.BuildTime,
		"git_commit": h.build.GitCommit,
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":    h.build.Version,
		"build_time": h.build.BuildTime,
		"git_commit": h.build.GitCommit,
	})
}
