//go:build embed
// +build embed

package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates returns the embedded template directory
func Templates() (fs.FS, error) {
	return fs.Sub(files, "templates")
}

// Static returns the embedded static asset directory
func Static() (fs.FS, error) {
	return fs.Sub(files, "static")
}
