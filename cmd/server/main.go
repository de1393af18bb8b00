package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BHa01559102-bit/hexecutioners/internal/api"
	"github.com/BHa01559102-bit/hexecutioners/internal/api/handlers"
	"github.com/BHa01559102-bit/hexecutioners/internal/api/services"
	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/predictor"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/telemetry"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
)

const serviceName = "hexecutioners"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	db, err := repositories.ConnectDatabase(cfg)
	if err != nil {
		return err
	}
	repo := repositories.New(db)

	store, err := repositories.NewFileStore(cfg)
	if err != nil {
		return err
	}

	schema, err := predictor.LoadSchema(cfg.ModelSchemaPath)
	if err != nil {
		return err
	}
	// A missing model leaves every prediction on the fallback percentage.
	var model predictor.Classifier
	if m, err := predictor.LoadLightGBM(cfg.ModelPath); err != nil {
		slog.Warn("dropout model unavailable, using fallback", "path", cfg.ModelPath, "fallback", cfg.DropoutFallback, "error", err)
	} else {
		slog.Info("dropout model loaded", "path", cfg.ModelPath, "features", m.NFeatures())
		model = m
	}
	pred := predictor.New(schema, model, cfg.DropoutThreshold, cfg.DropoutFallback)

	views, err := web.NewRenderer(cfg)
	if err != nil {
		return err
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	deps := handlers.Deps{
		Config:    cfg,
		Repo:      repo,
		Store:     store,
		Predictor: pred,
		Schema:    schema,
		Sessions:  sessions,
		Views:     views,
	}
	if cfg.Google.Enabled() {
		deps.Google = services.NewGoogleAuth(cfg.Google)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(handlers.New(deps), sessions, cfg),
		// Uploads need more time than the page handlers.
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
