// Package web serves the embedded deck page. The page only renders server
// commands and forwards pointer, button and transition events.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var content embed.FS

// Register serves index.html at / and the assets under /static.
func Register(r *gin.Engine) error {
	static, err := fs.Sub(content, "static")
	if err != nil {
		return err
	}
	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		return err
	}

	r.StaticFS("/static", http.FS(static))
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	return nil
}
