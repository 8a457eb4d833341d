package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/models"
	"github.com/threatintel-platform/backend/internal/repo"
)

type IndicatorHandler struct {
	Indicators *repo.IndicatorRepo
}

func (h *IndicatorHandler) Search(c echo.Context) error {
	var filters models.SearchFilters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}
	return c.JSON(http.StatusOK, h.Indicators.Search(filters))
}

func (h *IndicatorHandler) GetIndicator(c echo.Context) error {
	ind, ok := h.Indicators.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Indicator not found")
	}
	return c.JSON(http.StatusOK, ind)
}

func (h *IndicatorHandler) GetRelated(c echo.Context) error {
	related, ok := h.Indicators.Related(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Indicator not found")
	}
	return c.JSON(http.StatusOK, related)
}
