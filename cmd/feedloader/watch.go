package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedloader/feedlib"
	"feedloader/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WatchCmd reloads one feed until interrupted
type WatchCmd struct {
	URL string `arg:"" optional:"" name:"url" help:"Feed to watch. Defaults to FEEDLOADER_URL."`
}

func (c *WatchCmd) Run(rt *runtime) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, rt)
}

func (c *WatchCmd) run(ctx context.Context, rt *runtime) error {
	url := c.URL
	if url == "" {
		url = rt.cfg.URL
	}

	sink, err := metrics.NewPrometheusMetrics(rt.registry)
	if err != nil {
		return err
	}

	loader, err := rt.newLoader(url, sink)
	if err != nil {
		return err
	}
	defer loader.Close()

	if addr := rt.cfg.Metrics.Addr; addr != "" {
		srv := serveMetrics(rt, addr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	rt.logger.Info("Watching feed", map[string]interface{}{
		"url":      url,
		"interval": rt.cfg.RefreshInterval.String(),
	})

	ticker := time.NewTicker(rt.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		items, err := feedlib.Load(ctx, loader)
		switch {
		case errors.Is(err, context.Canceled):
			rt.logger.Info("Stopped watching feed", map[string]interface{}{"url": url})
			return nil
		case err != nil:
			rt.logger.Error("Feed load failed", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
		default:
			rt.logger.Info("Feed loaded", map[string]interface{}{
				"url":   url,
				"items": len(items),
			})
		}

		select {
		case <-ctx.Done():
			rt.logger.Info("Stopped watching feed", map[string]interface{}{"url": url})
			return nil
		case <-ticker.C:
		}
	}
}

func serveMetrics(rt *runtime, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(rt.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		rt.logger.Info("Metrics server starting", map[string]interface{}{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			rt.logger.Error("Metrics server failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
	return srv
}
