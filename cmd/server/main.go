package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studiobook/studio-booking-backend/internal/app"
	"github.com/studiobook/studio-booking-backend/internal/config"
	"github.com/studiobook/studio-booking-backend/internal/db"
	"github.com/studiobook/studio-booking-backend/internal/geo"
	"github.com/studiobook/studio-booking-backend/internal/pkg/kv"
	"github.com/studiobook/studio-booking-backend/internal/studio"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Open the durable booking medium
	medium, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open booking store: %v", err)
	}

	// Fetch the catalog snapshot (one-shot; consumed synchronously after)
	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to load studio catalog: %v", err)
	}
	log.Printf("loaded %d studios from catalog", len(catalog))

	// Initialize App Container
	container, err := app.NewContainer(ctx, app.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		Medium:              medium,
		Catalog:             catalog,
		DefaultRef:          geo.Point{Lat: cfg.DefaultRefLat, Lng: cfg.DefaultRefLng},
		DayOpensAt:          cfg.DayOpensAt,
		DayClosesAt:         cfg.DayClosesAt,
		SlotIntervalMinutes: cfg.SlotIntervalMinutes,
	})
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}

// openStore builds the key-value medium selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return kv.NewRedisStore(client), nil

	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return kv.NewPostgresStore(pool), nil

	default:
		return kv.NewFileStore(cfg.DataDir)
	}
}

// loadCatalog prefers the remote catalog URL and falls back to the
// local snapshot file.
func loadCatalog(ctx context.Context, cfg *config.Config) ([]studio.Studio, error) {
	if cfg.CatalogURL != "" {
		return studio.FetchCatalog(ctx, cfg.CatalogURL)
	}
	return studio.LoadCatalogFile(cfg.CatalogPath)
}
