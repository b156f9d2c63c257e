package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"proposaldesk/apiclient"
	"proposaldesk/config"
	"proposaldesk/handlers"
	"proposaldesk/localstore"
	"proposaldesk/uistate"
	"proposaldesk/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	storePath := cfg.Backend.TokenPath
	if storePath == "" {
		storePath = "proposaldesk.json"
	}
	store, err := localstore.Open(storePath)
	if err != nil {
		logger.Fatal("could not open local store", zap.String("path", storePath), zap.Error(err))
	}

	api := apiclient.New(apiclient.Options{
		BaseURL:  cfg.Backend.BaseURL,
		Timeout:  cfg.Backend.Timeout,
		CacheTTL: cfg.Backend.CacheTTL,
		Token: func() string {
			return store.Get(localstore.KeyAuthToken)
		},
		Logger: logger,
	})

	sessions := uistate.NewRegistry(cfg.UI.SessionTTL,
		func() uistate.State {
			s := uistate.Default()
			if saved := store.Get(localstore.KeyTheme); saved != "" {
				s = s.WithTheme(uistate.ParseTheme(saved))
			}
			return s
		},
		func(t uistate.Theme) {
			if err := store.Set(localstore.KeyTheme, string(t)); err != nil {
				logger.Warn("could not persist theme", zap.Error(err))
			}
		},
	)
	wizards := wizard.NewRegistry(cfg.UI.SessionTTL)

	app := handlers.NewApp(api, logger, sessions, wizards, cfg.UI.DefaultPageSize, cfg.UI.SearchDebounce)

	e := newServer(app, cfg, logger)

	// Expired sessions and abandoned drafts get swept in the background.
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sessions.Sweep()
				wizards.Sweep()
			case <-sweepDone:
				return
			}
		}
	}()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", httpServer.Addr))
		if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownSignal
	close(sweepDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newServer(app *handlers.App, cfg config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(rateLimiter(cfg.Backend))
	e.Use(handlers.SessionMiddleware(app))

	e.Static("/static", "static")

	// ── Home & dashboard ─────────────────────────────────────
	e.GET("/", handlers.HandleHome(app))
	e.GET("/dashboard", handlers.HandleDashboard(app))

	// ── Neighborhoods ────────────────────────────────────────
	e.GET("/neighborhoods", handlers.HandleNeighborhoodList(app))
	e.GET("/neighborhoods/:id", handlers.HandleNeighborhoodDetail(app))

	// ── Proposal browsing ────────────────────────────────────
	e.GET("/proposals", handlers.HandleProposalList(app))
	e.GET("/proposals/export/excel", handlers.HandleProposalsExcelExport(app))
	e.GET("/proposals/:id", handlers.HandleProposalDetail(app))
	e.DELETE("/proposals/:id", handlers.HandleProposalDelete(app))
	e.POST("/proposals/:id/calculate-score", handlers.HandleCalculateScore(app))
	e.POST("/proposals/:id/generate-projections", handlers.HandleGenerateProjections(app))
	e.GET("/proposals/:id/export/pdf", handlers.HandleProposalPDFExport(app))

	// ── Proposal builder ─────────────────────────────────────
	e.GET("/proposals/new", handlers.HandleWizard(app))
	e.POST("/proposals/new/advance", handlers.HandleWizardAdvance(app))
	e.POST("/proposals/new/retreat", handlers.HandleWizardRetreat(app))
	e.POST("/proposals/new/neighborhood", handlers.HandleWizardSetNeighborhood(app))
	e.POST("/proposals/new/details", handlers.HandleWizardSetDetails(app))
	e.POST("/proposals/new/units", handlers.HandleWizardAddUnit(app))
	e.POST("/proposals/new/units/:index", handlers.HandleWizardUpdateUnit(app))
	e.DELETE("/proposals/new/units/:index", handlers.HandleWizardRemoveUnit(app))
	e.POST("/proposals/new/submit", handlers.HandleWizardSubmit(app))
	e.POST("/proposals/new/discard", handlers.HandleWizardDiscard(app))

	// ── Analytics & map ──────────────────────────────────────
	e.GET("/analytics", handlers.HandleAnalytics(app))
	e.GET("/map", handlers.HandleMapPage(app))
	e.GET("/map/data", handlers.HandleMapData(app))
	e.POST("/map/layers/:layer", handlers.HandleMapToggleLayer(app))

	// ── Session UI state ─────────────────────────────────────
	e.POST("/ui/sidebar/toggle", handlers.HandleSidebarToggle(app))
	e.POST("/ui/theme/toggle", handlers.HandleThemeToggle(app))
	e.POST("/ui/search", handlers.HandleSearchInput(app))
	e.POST("/ui/filters/reset", handlers.HandleResetFilters(app))

	return e
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.String("remote_ip", v.RemoteIP),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			if v.Status >= http.StatusInternalServerError {
				logger.Error("request completed", fields...)
			} else {
				logger.Info("request completed", fields...)
			}
			return nil
		},
	})
}

func rateLimiter(cfg config.BackendConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})
	return middleware.RateLimiter(store)
}
