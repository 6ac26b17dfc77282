package http

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/domzi1231/fb-ads-generator/internal/logger"
)

// registerStatic serves the built frontend, falling back to index.html
// for client-side routes. API paths are never swallowed.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	if info, err := os.Stat(indexPath); err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "request", "resource", "http", "result", "failed", "path", indexPath)
		return
	}

	logger.Info("static assets enabled", "module", "http", "action", "request", "resource", "http", "result", "ok", "dir", dir)

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
			return echo.ErrNotFound
		}

		if clean := strings.TrimPrefix(path.Clean(requestPath), "/"); clean != "" && clean != "." {
			candidate := filepath.Join(dir, clean)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return c.File(candidate)
			}
		}

		return c.File(indexPath)
	})
}
