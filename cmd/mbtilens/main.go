package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mlorentedev/mbtilens/internal/adapter"
	"github.com/mlorentedev/mbtilens/internal/config"
	"github.com/mlorentedev/mbtilens/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	envPath := flag.String("env", ".env", "path to a dotenv file (ignored when missing)")
	useMock := flag.Bool("mock", false, "use mock adapter instead of a real LLM backend")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	if err := run(*configPath, *envPath, *useMock, *port); err != nil {
		slog.Error("mbtilens exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath, envPath string, useMock bool, port int) error {
	if err := config.LoadDotEnv(envPath); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Port = port
	}

	initLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildAdapter(ctx, cfg, useMock)
	if err != nil {
		return fmt.Errorf("adapter: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.SetupMux(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("mbtilens listening", "addr", srv.Addr, "adapter", a.Name(), "available", a.Available())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		slog.Info("server stopped")
		return nil
	})

	return g.Wait()
}

func buildAdapter(ctx context.Context, cfg config.Config, useMock bool) (adapter.LLMAdapter, error) {
	if useMock {
		slog.Info("mode: mock adapter enabled")
		return &adapter.MockAdapter{Delay: 500 * time.Millisecond}, nil
	}

	if cfg.Provider == "" {
		slog.Warn("LLM_PROVIDER is not set, serving sample output only")
	}
	slog.Info("provider config",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"base_url", cfg.BaseURL,
		"api_key", cfg.MaskedAPIKey(),
	)

	a, err := adapter.FromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if _, ok := a.(*adapter.MockAdapter); ok && cfg.Provider != "" && cfg.Provider != adapter.ProviderMock {
		slog.Warn("LLM_API_KEY is empty, falling back to sample output", "provider", cfg.Provider)
	}
	return a, nil
}

func initLogger(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l})))
}
