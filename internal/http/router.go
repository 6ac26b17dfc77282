package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/domzi1231/fb-ads-generator/internal/handler"
)

func NewRouter(
	adsHandler *handler.AdsHandler,
	historyHandler *handler.HistoryHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	adsHandler.RegisterRoutes(api)
	historyHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
