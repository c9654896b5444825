package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/synerjet/bendesk/internal/infrastructure/database"
	"github.com/synerjet/bendesk/internal/infrastructure/metrics"
	"github.com/synerjet/bendesk/internal/infrastructure/scheduler"
	"github.com/synerjet/bendesk/internal/interfaces/cli/bootstrap"
	"github.com/synerjet/bendesk/internal/interfaces/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "worker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envFlag := flag.String("env", "development", "Environment (development, test, production)")
	configPath := flag.String("config", "", "Path to config file")
	metricsAddr := flag.String("metrics-addr", "", "Serve /metrics on this address (e.g. :9091)")
	flag.Parse()

	env := bootstrap.ResolveEnv(*envFlag)

	cfg, log, err := bootstrap.LoadWithDatabase(env, *configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting mail worker", "environment", env, "schedule", cfg.Mail.PollSchedule)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	poller, closeCache, err := worker.BuildMailPoller(ctx, database.Get(), cfg, m, log)
	if err != nil {
		return err
	}
	defer closeCache()

	sched := scheduler.NewSchedulerManager(log.Named("scheduler"))
	if err := sched.RegisterMailPollJob(cfg.Mail.PollSchedule, poller); err != nil {
		return err
	}

	var metricsSrv *http.Server
	if *metricsAddr != "" && cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, m.Handler())
		metricsSrv = &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorw("metrics server failed", "error", err)
			}
		}()
	}

	// First pass runs right away instead of waiting for the first tick.
	if _, err := poller.Execute(ctx); err != nil {
		log.Errorw("initial mail poll failed", "error", err)
	}

	sched.Start()
	<-ctx.Done()
	log.Infow("received signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		log.Warnw("scheduler did not stop cleanly", "error", err)
	}

	log.Infow("mail worker stopped")
	return nil
}
