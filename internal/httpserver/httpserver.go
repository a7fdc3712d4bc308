package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const defaultDrainTimeout = 30 * time.Second

// Run starts the HTTP server, the artifact reclaimer and the stale job sweeper, and blocks
// until a shutdown signal is received. Shutdown stops accepting requests, then waits for
// background report jobs up to the drain timeout.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()
	if err := srv.mapHandlers(ctx); err != nil {
		srv.l.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	bgCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()
	go srv.artifactUC.StartReclaimer(bgCtx)
	go srv.reportUC.StartJobSweeper(bgCtx)

	addr := fmt.Sprintf("%s:%d", srv.host, srv.port)
	server := &http.Server{
		Addr:    addr,
		Handler: srv.gin,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "Started server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-ch:
		srv.l.Infof(ctx, "Received signal %v, shutting down gracefully", sig)
	}

	stopBackground()

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Server shutdown error: %v", err)
		return err
	}

	srv.drainJobs(ctx)
	srv.l.Info(ctx, "API server stopped.")
	return nil
}

func (srv *HTTPServer) drainJobs(ctx context.Context) {
	timeout := srv.report.DrainTimeout
	if timeout <= 0 {
		timeout = defaultDrainTimeout
	}
	drainCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	srv.l.Infof(ctx, "Waiting up to %s for running report jobs", timeout)
	if err := srv.reportUC.Wait(drainCtx); err != nil {
		srv.l.Warnf(ctx, "Report jobs still running at shutdown, the job sweeper will fail them: %v", err)
	}
}
