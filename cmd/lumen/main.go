// Package main is the entry point for the lumen map renderer.
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

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/config"
	"github.com/Faultbox/lumen/internal/lighting"
	"github.com/Faultbox/lumen/internal/lightmap"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/internal/metrics"
	"github.com/Faultbox/lumen/internal/scenario"
	"github.com/Faultbox/lumen/internal/world"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Lumen ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	sc, err := scenario.Load(cfg.Scenario.Path)
	if err != nil {
		return err
	}
	w, err := sc.Build()
	if err != nil {
		return fmt.Errorf("building %s: %w", cfg.Scenario.Path, err)
	}
	if sc.Weather.SightPenalty == 0 {
		w.Weather = world.Weather{
			SightPenalty:  cfg.Lighting.Weather.SightPenalty,
			LightModifier: cfg.Lighting.Weather.LightModifier,
		}
	}

	reg := prometheus.NewRegistry()
	m := lightmap.New(w, lightmap.Options{
		MaxViewDistance:  cfg.Vision.MaxViewDistance,
		BaselineDistance: cfg.Vision.BaselineDistance,
		ZLevels:          cfg.Vision.ZLevels,
		Workers:          cfg.Lighting.Workers,
		SunElevation:     cfg.Lighting.SunElevation,
	}, metrics.New(reg))
	if sc.SunElevation != nil {
		m.SetSunElevation(*sc.SunElevation)
	}
	elevation := m.Options().SunElevation
	sun := lighting.SunDirection(cfg.Lighting.SunAzimuth, float64(elevation))
	logger.Info("scenario loaded",
		zap.String("name", sc.Name),
		zap.Int("width", w.Width()),
		zap.Int("height", w.Height()),
		zap.Int("levels", len(w.Levels())),
		zap.Float32("sun_elevation", elevation),
		zap.Float32s("sun_direction", sun[:]))

	for _, c := range sc.CameraPositions() {
		m.AddCamera(c)
	}

	viewer := lightmap.Viewer{
		Pos:             sc.Viewer.Position(),
		Clairvoyance:    sc.Viewer.Clairvoyance,
		VisionThreshold: sc.Viewer.VisionThreshold,
		UnimpairedRange: sc.Viewer.UnimpairedRange,
	}

	start := time.Now()
	if err := m.BuildMapCache(ctx, viewer.Pos); err != nil {
		return fmt.Errorf("building map cache: %w", err)
	}
	logger.Info("map cache built",
		zap.Duration("took", time.Since(start)),
		zap.Float32("outdoor_light", m.OutdoorLight()))

	if err := render(os.Stdout, m, w, viewer); err != nil {
		return err
	}

	if cfg.Metrics.Listen == "" {
		return nil
	}
	return serveMetrics(ctx, cfg.Metrics.Listen, reg)
}

// serveMetrics exposes the build metrics until ctx is done.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
