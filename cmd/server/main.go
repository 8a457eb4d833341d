package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/threatintel-platform/backend/internal/config"
	"github.com/threatintel-platform/backend/internal/events"
	"github.com/threatintel-platform/backend/internal/handlers"
	"github.com/threatintel-platform/backend/internal/logging"
	"github.com/threatintel-platform/backend/internal/middleware/auth"
	"github.com/threatintel-platform/backend/internal/repo"
	"github.com/threatintel-platform/backend/internal/token"
	httpserver "github.com/threatintel-platform/backend/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	l := logging.New(configuration.LogLevel)
	slog.SetDefault(l)

	var prod *events.Producer
	if len(configuration.KafkaBrokers) > 0 {
		prod = events.NewProducer(configuration.KafkaBrokers, configuration.KafkaTopic)
		l.Info("audit events enabled", "brokers", configuration.KafkaBrokers, "topic", configuration.KafkaTopic)
	}

	seedUsers, err := repo.SeedUsers()
	if err != nil {
		l.Error("seeding users failed", "error", err)
		os.Exit(1)
	}
	users, err := repo.NewUserRepo(seedUsers)
	if err != nil {
		l.Error("building user repo failed", "error", err)
		os.Exit(1)
	}
	feeds, err := repo.NewFeedRepo(repo.SeedFeeds())
	if err != nil {
		l.Error("building feed repo failed", "error", err)
		os.Exit(1)
	}
	indicators, err := repo.NewIndicatorRepo(repo.SeedIndicators())
	if err != nil {
		l.Error("building indicator repo failed", "error", err)
		os.Exit(1)
	}
	reports, err := repo.NewReportRepo(repo.SeedReports())
	if err != nil {
		l.Error("building report repo failed", "error", err)
		os.Exit(1)
	}

	tokens := token.New([]byte(configuration.JWTSecret))
	guard := &auth.Guard{Tokens: tokens, Users: users}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(logging.RequestLogger(l))

	deps := httpserver.Deps{
		Guard:                guard,
		AuthHandler:          &handlers.AuthHandler{Users: users, Tokens: tokens, Producer: prod},
		FeedHandler:          &handlers.FeedHandler{Feeds: feeds, Producer: prod},
		IndicatorHandler:     &handlers.IndicatorHandler{Indicators: indicators},
		ReportHandler:        &handlers.ReportHandler{Reports: reports, Producer: prod},
		VisualizationHandler: &handlers.VisualizationHandler{},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.ListenAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		l.Info("server starting", "addr", configuration.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error("server shutdown error", "error", err)
	}

	if err := prod.Close(); err != nil {
		l.Error("producer close error", "error", err)
	}

	l.Info("shutdown complete")
}
