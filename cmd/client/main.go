// Package main runs the FleetKeeper terminal client. It works directly on
// the configured collection store, so it can share a sqlite, postgres or
// redis store with a running server.
package main

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/atinyakov/FleetKeeper/internal/app"
	"github.com/atinyakov/FleetKeeper/internal/client/shell"
	"github.com/atinyakov/FleetKeeper/internal/config"
	"github.com/atinyakov/FleetKeeper/internal/db"
	"github.com/atinyakov/FleetKeeper/internal/kv"
	"github.com/atinyakov/FleetKeeper/internal/logger"
	"github.com/atinyakov/FleetKeeper/internal/service"
	"go.uber.org/zap"
)

var (
	version   string
	buildDate string
)

// main loads the configuration, opens the store and starts the shell.
func main() {
	options := config.Parse()

	fmt.Printf("FleetKeeper client %s (%s)\n", cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))
	fmt.Println("Type 'help' for a list of commands.")

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	// The shell owns stdout; only warnings and errors are logged.
	if err := log.Init("warn"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, closeStore, err := db.OpenStore(ctx, options.StoreDriver, options.StoreDSN, options.RedisPrefix)
	if err != nil {
		log.Log.Fatal("cannot open store", zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	archive, err := app.OpenArchive(ctx, options)
	if err != nil {
		log.Log.Fatal("cannot open export archive", zap.Error(err))
	}

	adapter := kv.NewAdapter(store, log.Log.Named("store"))
	a := app.New(ctx, adapter, app.Options{
		JWTSecret: cmp.Or(options.JWTSecret, "local"),
		Archive:   archive,
		Log:       log.Log,
	})
	session := service.NewSession(ctx, a.Auth, adapter)

	shell.New(a, session, os.Stdin, os.Stdout, options.ExportDir).Run(ctx)
}
