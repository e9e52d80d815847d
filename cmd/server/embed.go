//go:build embed
// +build embed

package main

import (
	"io/fs"
	"log"
	"net/http"

	"calpredict/internal/config"
	"calpredict/web"
)

// loadAssets returns the templates and static files compiled into the binary
func loadAssets(_ *config.Config) (fs.FS, http.FileSystem, error) {
	log.Println("📦 Using embedded web assets")

	templates, err := web.Templates()
	if err != nil {
		return nil, nil, err
	}
	static, err := web.Static()
	if err != nil {
		return nil, nil, err
	}
	return templates, http.FS(static), nil
}
