package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Start(addr string, catalogH *handler.CatalogHandler, saleH *handler.SaleHandler) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	RegisterRoutes(e, catalogH, saleH)
	return e.Start(addr)
}
