// Package main starts the FleetKeeper HTTP API: it loads configuration,
// opens the collection store, wires repositories and services, runs the
// notification cleaner and serves until interrupted.
package main

import (
	"cmp"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/FleetKeeper/internal/app"
	"github.com/atinyakov/FleetKeeper/internal/config"
	"github.com/atinyakov/FleetKeeper/internal/db"
	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/logger"
	"github.com/atinyakov/FleetKeeper/internal/metrics"
	"github.com/atinyakov/FleetKeeper/internal/server/handler/http"
	"github.com/atinyakov/FleetKeeper/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line, config file and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	zapLogger := log.Log

	if err := run(options, zapLogger); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func run(options *config.Options, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := db.OpenStore(ctx, options.StoreDriver, options.StoreDSN, options.RedisPrefix)
	if err != nil {
		return fmt.Errorf("cannot open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			zapLogger.Warn("failed to close store", zap.Error(err))
		}
	}()

	archive, err := app.OpenArchive(ctx, options)
	if err != nil {
		return fmt.Errorf("cannot open export archive: %w", err)
	}

	secret := options.JWTSecret
	if secret == "" {
		secret = randomSecret()
		zapLogger.Warn("JWT_SECRET not set, sessions will not survive a restart")
	}

	collector := metrics.New()
	adapter := kv.NewAdapter(store, zapLogger.Named("store"), kv.WithObserver(collector))
	a := app.New(ctx, adapter, app.Options{
		JWTSecret: secret,
		TokenTTL:  options.TokenTTL.Duration,
		Archive:   archive,
		Log:       zapLogger,
	})

	// Build the router with middleware and routes.
	router := http.NewRouter(a.Handlers(), a.Auth, collector, zapLogger)
	server := &nethttp.Server{
		Addr:              options.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Purge old read notifications in the background.
	cleanerDone := service.StartNotificationCleaner(gctx, a.Notifications,
		options.CleanupInterval.Duration,
		options.NotificationRetention.Duration,
		zapLogger.Named("cleaner"),
	)

	g.Go(func() error {
		zapLogger.Info("starting HTTP server",
			zap.String("addr", options.Address),
			zap.String("store", options.StoreDriver),
			zap.Bool("tls", options.TLSCert != ""),
		)
		var err error
		if options.TLSCert != "" {
			err = server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		zapLogger.Info("shutting down HTTP server")
		err := server.Shutdown(shutdownCtx)
		<-cleanerDone
		return err
	})

	return g.Wait()
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
