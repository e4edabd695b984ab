// Command prismd runs the bill tracker engine headless: it opens the
// document store, materializes recurring bills, and runs the notification
// scheduler until interrupted. Notifications go to the structured log;
// a host with a real display layer embeds the packages directly instead.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/perrrrrrrrr/prism-bills-app/internal/notify"
	"github.com/perrrrrrrrr/prism-bills-app/internal/service"
	"github.com/perrrrrrrrr/prism-bills-app/internal/storage"
	"github.com/perrrrrrrrr/prism-bills-app/internal/storage/jsonfile"
	"github.com/perrrrrrrrr/prism-bills-app/internal/storage/sqlite"
	"github.com/perrrrrrrrr/prism-bills-app/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	// Get paths from env or use defaults
	dbPath := getEnv("PRISM_DB_PATH", "./data/prism-bills.db")
	backend := getEnv("PRISM_STORE", "sqlite")

	store, err := openStore(backend, dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", backend, "path", dbPath)

	interval := notify.DefaultScanInterval
	if v := os.Getenv("PRISM_SCAN_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			slog.Error("Invalid PRISM_SCAN_INTERVAL", "value", v, "error", err)
			os.Exit(1)
		}
		interval = parsed
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gateway := service.NewGateway(store)
	gateway.MaterializeRecurring(ctx)

	scheduler := notify.NewScheduler(gateway, notify.LogNotifier{},
		notify.WithInterval(interval),
		notify.WithRegisterer(prometheus.DefaultRegisterer),
	)
	state := scheduler.Start(ctx)
	defer scheduler.Stop()
	slog.Info("Notification scheduler started", "state", state.String(), "interval", interval)

	<-ctx.Done()
	slog.Info("Shutting down")
}

func openStore(backend, path string) (storage.DocumentStore, error) {
	switch backend {
	case "sqlite":
		return sqlite.New(path)
	case "json":
		return jsonfile.New(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want sqlite or json)", backend)
	}
}
