package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/events"
	"github.com/threatintel-platform/backend/internal/middleware/auth"
	"github.com/threatintel-platform/backend/internal/models"
	"github.com/threatintel-platform/backend/internal/repo"
)

type ReportHandler struct {
	Reports  *repo.ReportRepo
	Producer *events.Producer
}

func (h *ReportHandler) GetReports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Reports.List())
}

func (h *ReportHandler) GetReport(c echo.Context) error {
	rep, ok := h.Reports.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}
	return c.JSON(http.StatusOK, rep)
}

// CreateReport requires only authentication; createdBy is taken from the
// body as-is, with no ownership check on create.
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Format      string `json:"format"`
		Content     string `json:"content"`
		CreatedBy   string `json:"createdBy"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}

	created := h.Reports.Create(models.Report{
		Name:        req.Name,
		Description: req.Description,
		Format:      req.Format,
		Content:     req.Content,
		CreatedBy:   req.CreatedBy,
	})

	user, _ := auth.CurrentUser(c)
	publish(c, h.Producer, created.ID, map[string]any{
		"type":      "report_created",
		"report_id": created.ID,
		"user":      user.Username,
	})

	return c.JSON(http.StatusOK, created)
}

func (h *ReportHandler) UpdateReport(c echo.Context) error {
	id := c.Param("id")
	existing, ok := h.Reports.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}

	user, _ := auth.CurrentUser(c)
	if !user.IsAdmin() && existing.CreatedBy != user.Username {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to update this report")
	}

	var rep models.Report
	if err := c.Bind(&rep); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}

	updated, ok := h.Reports.Update(id, rep)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}

	publish(c, h.Producer, id, map[string]any{
		"type":      "report_updated",
		"report_id": id,
		"user":      user.Username,
	})

	return c.JSON(http.StatusOK, updated)
}

func (h *ReportHandler) DeleteReport(c echo.Context) error {
	id := c.Param("id")
	existing, ok := h.Reports.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}

	user, _ := auth.CurrentUser(c)
	if !user.IsAdmin() && existing.CreatedBy != user.Username {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete this report")
	}

	if !h.Reports.Delete(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}

	publish(c, h.Producer, id, map[string]any{
		"type":      "report_deleted",
		"report_id": id,
		"user":      user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Report deleted successfully"})
}

func (h *ReportHandler) ExportReport(c echo.Context) error {
	id := c.Param("id")
	format := c.QueryParam("format")

	var mediaType string
	switch format {
	case "pdf":
		mediaType = "application/pdf"
	case "csv":
		mediaType = "text/csv"
	case "json":
		mediaType = echo.MIMEApplicationJSON
	default:
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "format must be one of pdf, csv, json")
	}

	rep, ok := h.Reports.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}

	// Placeholder export; no real rendering happens in this demo.
	content := fmt.Sprintf("This is the content of report %s in %s format", id, format)
	if format == "json" {
		content = fmt.Sprintf(`{"report": %q, "content": %q}`, rep.Name, rep.Content)
	}

	return c.Blob(http.StatusOK, mediaType, []byte(content))
}
