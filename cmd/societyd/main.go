// Command societyd serves a PixelSociety simulation over HTTP for
// interactive team building and observation.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/amaz421326/PixelSociety/internal/api"
	"github.com/amaz421326/PixelSociety/internal/engine"
	"github.com/amaz421326/PixelSociety/internal/persistence"
	"github.com/amaz421326/PixelSociety/internal/scenario"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	addr := envOrDefault("PIXELSOCIETY_ADDR", ":8080")
	adminKey := os.Getenv("PIXELSOCIETY_ADMIN_KEY")
	seed := envInt64OrDefault("PIXELSOCIETY_SEED", 42)
	dbPath := os.Getenv("PIXELSOCIETY_DB")
	demoAgents := os.Getenv("PIXELSOCIETY_DEMO_AGENTS") == "1"

	if adminKey == "" {
		slog.Warn("PIXELSOCIETY_ADMIN_KEY not set, mutating endpoints are unauthenticated")
	}

	var store *persistence.Store
	if dbPath != "" {
		var err error
		store, err = persistence.Open(dbPath)
		if err != nil {
			slog.Error("failed to open history database", "error", err, "path", dbPath)
			os.Exit(1)
		}
		defer store.Close()
		slog.Info("history database opened", "path", dbPath)
	}

	// The factory builds each fresh simulation; reset swaps instances
	// wholesale so no other code ever holds a stale reference.
	factory := func() *engine.Simulation {
		sim := scenario.BaseSimulation(seed)
		if demoAgents {
			scenario.PopulateDemoAgents(sim)
		}
		return sim
	}

	server := api.New(addr, adminKey, factory, store)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt64OrDefault(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}
