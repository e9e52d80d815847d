//go:build !embed
// +build !embed

package main

import (
	"io/fs"
	"log"
	"net/http"
	"os"

	"calpredict/internal/config"

	"github.com/gin-gonic/gin"
)

// loadAssets serves templates and static files from the local filesystem
func loadAssets(cfg *config.Config) (fs.FS, http.FileSystem, error) {
	log.Println("🔧 Using local filesystem for web assets")
	log.Printf("   - Templates: %s", cfg.Web.TemplateDir)
	log.Printf("   - Static: %s", cfg.Web.StaticDir)

	if _, err := os.Stat(cfg.Web.StaticDir); err != nil {
		return nil, nil, err
	}
	return os.DirFS(cfg.Web.TemplateDir), gin.Dir(cfg.Web.StaticDir, false), nil
}
