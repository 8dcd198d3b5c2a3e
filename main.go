package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kscout/credential-intake-api/config"
	"github.com/kscout/credential-intake-api/handlers"
	"github.com/kscout/credential-intake-api/metrics"
	"github.com/kscout/credential-intake-api/store"

	"github.com/Noah-Huppert/golog"
	"github.com/prometheus/client_golang/prometheus"
)

// shutdownTimeout bounds graceful shutdown of the HTTP server and datastore
const shutdownTimeout = 10 * time.Second

// readHeaderTimeout bounds how long a client may take to send request headers
const readHeaderTimeout = 10 * time.Second

func main() {
	// {{{1 Context
	ctx, ctxCancel := context.WithCancel(context.Background())

	// signals holds signals received by process
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signals

		ctxCancel()
	}()

	// {{{1 Logger
	logger := golog.NewStdLogger("credential-intake-api")

	// {{{1 Configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("failed to load configuration: %s", err.Error())
	}

	cfgStr, err := cfg.String()
	if err != nil {
		logger.Fatalf("failed to get log safe configuration: %s", err.Error())
	}
	logger.Debugf("loaded configuration: %s", cfgStr)

	// {{{1 Metrics
	registry := prometheus.NewRegistry()
	metricsRecorders := metrics.NewMetrics(registry)

	// {{{1 Datastore
	// The connection attempt runs in the background, requests wait on it
	storeMgr := store.NewManager(logger.GetChild("store"), store.MongoDialer{
		DbName:  cfg.DbName,
		Timeout: cfg.DbConnectTimeout,
	})
	storeMgr.OnStateChange(func(state store.State) {
		metricsRecorders.DatastoreState.Set(float64(state))
	})
	storeMgr.Start(ctx, cfg.ResolveDbURI())

	// {{{1 Router
	baseHandler := handlers.BaseHandler{
		Ctx:     ctx,
		Logger:  logger.GetChild("handlers"),
		Cfg:     cfg,
		Store:   storeMgr,
		Metrics: metricsRecorders,
	}

	// {{{1 Start HTTP server
	server := http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handlers.NewRouter(baseHandler, registry),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("failed to serve: %s", err.Error())
		}
	}()

	logger.Infof("started server on %s", cfg.HTTPAddr())

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("failed to shutdown server: %s", err.Error())
	}

	if err := storeMgr.Disconnect(shutdownCtx); err != nil {
		logger.Errorf("failed to disconnect from datastore: %s", err.Error())
	}

	logger.Info("done")
}
