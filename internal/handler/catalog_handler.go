package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// カタログと検索の公開API
type CatalogHandler struct {
	query  *usecase.QueryUsecase
	search *usecase.SearchUsecase
}

// DI
func NewCatalogHandler(query *usecase.QueryUsecase, search *usecase.SearchUsecase) *CatalogHandler {
	return &CatalogHandler{query: query, search: search}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/games", h.list)
	e.GET("/games/in-stock", h.inStock)
	e.GET("/stock/total", h.stockTotal)
	e.GET("/search", h.searchResults)
	e.PUT("/search", h.setSearch)
}

func (h *CatalogHandler) list(c echo.Context) error {
	games, err := h.query.Games(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *CatalogHandler) inStock(c echo.Context) error {
	ctx := c.Request().Context()

	games, err := h.query.InStockGames(ctx)
	if err != nil {
		return writeError(c, err)
	}
	count, err := h.query.InStockCount(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": games,
		"count": count,
	})
}

func (h *CatalogHandler) stockTotal(c echo.Context) error {
	total, err := h.query.StockTotal(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}

// 現在の検索語とその結果
func (h *CatalogHandler) searchResults(c echo.Context) error {
	term := h.search.Term()

	games, err := h.query.SearchGames(c.Request().Context(), term)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"term":  term,
		"items": games,
	})
}

type SetSearchRequest struct {
	Term any `json:"term"`
}

// 検索語の更新。string以外は捨てられるが、応答はどちらも204（元の挙動：絶対に失敗しない）。
func (h *CatalogHandler) setSearch(c echo.Context) error {
	var req SetSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.search.SetSearch(req.Term)
	return c.NoContent(http.StatusNoContent)
}
