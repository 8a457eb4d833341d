package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/models"
)

type VisualizationHandler struct{}

// GetVisualizationData accepts the same filter body as indicator search
// but ignores it; the payload is a fixed-shape mock.
func (h *VisualizationHandler) GetVisualizationData(c echo.Context) error {
	var filters models.SearchFilters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}

	timeline := make([]models.TimelineDataPoint, 0, 7)
	for i := 0; i < 7; i++ {
		timeline = append(timeline, models.TimelineDataPoint{
			Date:  time.Now().AddDate(0, 0, -i).Format("2006-01-02"),
			Count: 10 + i*5,
		})
	}

	return c.JSON(http.StatusOK, models.VisualizationData{
		TimelineData: timeline,
		SourceDistribution: []models.SourceDistribution{
			{Source: "MISP", Count: 45},
			{Source: "OTX", Count: 32},
			{Source: "Recorded Future", Count: 28},
			{Source: "VirusTotal", Count: 18},
			{Source: "AbuseIPDB", Count: 12},
		},
		TypeDistribution: []models.TypeDistribution{
			{Type: "IP", Count: 56},
			{Type: "Domain", Count: 42},
			{Type: "URL", Count: 35},
			{Type: "Hash", Count: 28},
			{Type: "Email", Count: 14},
		},
	})
}
