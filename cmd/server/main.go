// Package main is the entry point for the protein explorer server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/protein-lab/server/internal/ai"
	"github.com/protein-lab/server/internal/api"
	"github.com/protein-lab/server/internal/cache"
	"github.com/protein-lab/server/internal/config"
	"github.com/protein-lab/server/internal/dashboard"
	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/internal/render"
	"github.com/protein-lab/server/internal/service"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/server.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting protein explorer server on port %d", cfg.Server.Port)

	// Load protein records: a dataset file when configured, the
	// embedded samples otherwise.
	var store protein.Store
	if cfg.Data.Path != "" {
		store, err = protein.Load(cfg.Data.Path)
		if err != nil {
			log.Fatalf("Failed to load dataset %q: %v", cfg.Data.Path, err)
		}
		log.Printf("Loaded dataset from: %s", cfg.Data.Path)
	} else {
		store = protein.SampleStore()
		log.Printf("Using embedded sample dataset")
	}

	symbols := store.Symbols()
	if len(symbols) == 0 {
		log.Fatal("Dataset contains no proteins")
	}

	// Initialize cache manager (shared across all proteins)
	cacheManager, err := cache.NewManager(cache.Config{
		SnapshotCacheSizeMB: cfg.Cache.SnapshotSizeMB,
		SnapshotTTL:         time.Duration(cfg.Cache.SnapshotTTLMinutes) * time.Minute,
		QueryCacheSize:      cfg.Cache.QuerySize,
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheManager.Close()

	// Initialize snapshot renderer (shared across all proteins)
	renderer := render.NewSnapshotRenderer(render.Config{
		ImageSize: cfg.Render.ImageSize,
	})

	// Initialize protein registry
	registry := api.NewProteinRegistry(symbols[0], symbols, store.Genes(), cfg.Server.Title)

	log.Printf("Serving %d protein(s), default: %s", len(symbols), symbols[0])

	for _, symbol := range symbols {
		rec, ok := store.Record(symbol)
		if !ok {
			log.Fatalf("Dataset order names %q but no record exists", symbol)
		}
		registry.Register(symbol, service.NewProteinService(service.Config{
			Symbol:   symbol,
			Record:   rec,
			Cache:    cacheManager,
			Renderer: renderer,
		}))
		log.Printf("  [%s] %s: %d residues, %d mutations",
			symbol, rec.Metadata.Name, len(rec.Structure), len(rec.Mutations))
	}

	// Initialize AI proxy. The key is read from the environment per
	// request, so a missing key only fails /ask-ai calls.
	aiClient := ai.NewClient(ai.Config{
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		APIKeyEnv:   cfg.AI.APIKeyEnv,
	})
	if os.Getenv(cfg.AI.APIKeyEnv) == "" {
		log.Printf("AI proxy: %s not set, /ask-ai will return errors", cfg.AI.APIKeyEnv)
	}

	// Session state for the dashboard interaction rules
	session := dashboard.NewState(store)

	// Set up HTTP router
	router := api.NewRouter(api.RouterConfig{
		Registry:    registry,
		Session:     session,
		AI:          aiClient,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
