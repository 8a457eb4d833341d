package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/handlers"
	"github.com/threatintel-platform/backend/internal/middleware/auth"
)

type Deps struct {
	Guard                *auth.Guard
	AuthHandler          *handlers.AuthHandler
	FeedHandler          *handlers.FeedHandler
	IndicatorHandler     *handlers.IndicatorHandler
	ReportHandler        *handlers.ReportHandler
	VisualizationHandler *handlers.VisualizationHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to the Threat Intelligence Platform API"})
	})

	api := e.Group("/api")

	api.POST("/auth/login", d.AuthHandler.Login)

	authed := api.Group("", d.Guard.RequireAuth)

	authed.GET("/auth/profile", d.AuthHandler.Profile)

	feeds := authed.Group("/feeds")
	feeds.GET("", d.FeedHandler.GetFeeds)
	feeds.GET("/:id", d.FeedHandler.GetFeed)
	feeds.POST("", d.FeedHandler.CreateFeed)
	feeds.PUT("/:id", d.FeedHandler.UpdateFeed)
	feeds.DELETE("/:id", d.FeedHandler.DeleteFeed)

	indicators := authed.Group("/indicators")
	indicators.POST("/search", d.IndicatorHandler.Search)
	indicators.GET("/:id", d.IndicatorHandler.GetIndicator)
	indicators.GET("/:id/related", d.IndicatorHandler.GetRelated)

	reports := authed.Group("/reports")
	reports.GET("", d.ReportHandler.GetReports)
	reports.GET("/:id", d.ReportHandler.GetReport)
	reports.POST("", d.ReportHandler.CreateReport)
	reports.PUT("/:id", d.ReportHandler.UpdateReport)
	reports.DELETE("/:id", d.ReportHandler.DeleteReport)
	reports.GET("/:id/export", d.ReportHandler.ExportReport)

	authed.POST("/visualization", d.VisualizationHandler.GetVisualizationData)
}
