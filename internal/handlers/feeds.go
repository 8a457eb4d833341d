package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/events"
	"github.com/threatintel-platform/backend/internal/middleware/auth"
	"github.com/threatintel-platform/backend/internal/models"
	"github.com/threatintel-platform/backend/internal/repo"
)

type FeedHandler struct {
	Feeds    *repo.FeedRepo
	Producer *events.Producer
}

func (h *FeedHandler) GetFeeds(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Feeds.List())
}

func (h *FeedHandler) GetFeed(c echo.Context) error {
	feed, ok := h.Feeds.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Feed not found")
	}
	return c.JSON(http.StatusOK, feed)
}

func (h *FeedHandler) CreateFeed(c echo.Context) error {
	user, _ := auth.CurrentUser(c)
	if !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to create feeds")
	}

	var feed models.ThreatFeed
	if err := c.Bind(&feed); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}
	if err := feed.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created := h.Feeds.Create(feed)

	publish(c, h.Producer, created.ID, map[string]any{
		"type":    "feed_created",
		"feed_id": created.ID,
		"user":    user.Username,
	})

	return c.JSON(http.StatusOK, created)
}

func (h *FeedHandler) UpdateFeed(c echo.Context) error {
	user, _ := auth.CurrentUser(c)
	if !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to update feeds")
	}

	var feed models.ThreatFeed
	if err := c.Bind(&feed); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}
	if err := feed.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, ok := h.Feeds.Update(c.Param("id"), feed)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Feed not found")
	}

	publish(c, h.Producer, updated.ID, map[string]any{
		"type":    "feed_updated",
		"feed_id": updated.ID,
		"user":    user.Username,
	})

	return c.JSON(http.StatusOK, updated)
}

func (h *FeedHandler) DeleteFeed(c echo.Context) error {
	user, _ := auth.CurrentUser(c)
	if !user.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete feeds")
	}

	id := c.Param("id")
	if !h.Feeds.Delete(id) {
		return echo.NewHTTPError(http.StatusNotFound, "Feed not found")
	}

	publish(c, h.Producer, id, map[string]any{
		"type":    "feed_deleted",
		"feed_id": id,
		"user":    user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Feed deleted successfully"})
}
