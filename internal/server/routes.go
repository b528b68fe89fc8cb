package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, catalogH *handler.CatalogHandler, saleH *handler.SaleHandler) {
	catalogH.RegisterRoutes(e)
	saleH.RegisterRoutes(e)
}
