package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 売りと台帳の公開API
type SaleHandler struct {
	sale  *usecase.SaleUsecase
	query *usecase.QueryUsecase
}

// DI
func NewSaleHandler(sale *usecase.SaleUsecase, query *usecase.QueryUsecase) *SaleHandler {
	return &SaleHandler{sale: sale, query: query}
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/sales", h.sell)
	e.GET("/sales", h.list)
	e.GET("/sales/revenue", h.revenue)
}

type SellRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Color    string `json:"color"`
	Featured bool   `json:"featured"`
	ImageURL string `json:"image_url"`
}

// 2段階のパイプラインが両方終わってから応答する。
// 在庫切れ・code不明でも201（売りは呼び出し側から見て失敗しない）。
func (h *SaleHandler) sell(c echo.Context) error {
	var req SellRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.sale.SellGame(c.Request().Context(), usecase.SellGameInput{
		Code:     req.Code,
		Name:     req.Name,
		Price:    req.Price,
		Color:    req.Color,
		Featured: req.Featured,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *SaleHandler) list(c echo.Context) error {
	sales, err := h.query.Sales(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) revenue(c echo.Context) error {
	total, err := h.query.TotalRevenue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}
