package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"supplier-vendor-api/internal"
	"supplier-vendor-api/internal/config"
	"supplier-vendor-api/internal/ledger"
	"supplier-vendor-api/internal/pdf"
	"supplier-vendor-api/internal/store"
)

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadAndValidate()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	var st store.Store
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		ps, err := store.NewPostgresStore(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to postgres store:", err)
		}
		defer ps.Close()
		st = ps
		// PDFs still land on disk regardless of the slot backend.
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			log.Fatal("Failed to create data dir:", err)
		}
	default:
		fs := store.NewFileStore(cfg.DataDir)
		if err := fs.Init(); err != nil {
			log.Fatal("Failed to initialize file store:", err)
		}
		st = fs
	}

	led := ledger.New(st, pdf.NewRenderer(cfg.DataDir))
	srv := internal.NewServer(led)

	log.Println("Starting Supplier Vendor API server...")
	log.Printf("Store backend: %s", cfg.StoreBackend)
	log.Printf("Data dir: %s", cfg.DataDir)
	log.Printf("Listening on %s", cfg.Addr)

	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Router))
}
