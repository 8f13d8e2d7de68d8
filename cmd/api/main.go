package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"soltana-store-api/internal/assets"
	"soltana-store-api/internal/binding"
	"soltana-store-api/internal/cache"
	"soltana-store-api/internal/cart"
	"soltana-store-api/internal/config"
	"soltana-store-api/internal/handler"
	"soltana-store-api/internal/repository"
	"soltana-store-api/internal/router"
	"soltana-store-api/internal/service"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Soltana store API...")

	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Durable cold tier for the cache, selected by config
	var store cache.Store
	switch cfg.Cache.Store {
	case "redis":
		redisStore, err := cache.NewRedisStore(cache.RedisStoreConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis store unavailable, cache runs memory-only: %v", err)
		} else {
			store = redisStore
		}
	case "none":
		log.Println("Durable cache store disabled by config")
	default: // sqlite
		if err := os.MkdirAll(filepath.Dir(cfg.Cache.SQLitePath), 0o755); err != nil {
			log.Printf("Warning: cannot create cache directory: %v", err)
		}
		sqliteStore, err := cache.NewSQLiteStore(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("Warning: SQLite store unavailable, cache runs memory-only: %v", err)
		} else {
			store = sqliteStore
		}
	}
	if store != nil {
		defer store.Close()
	}

	cacheManager := cache.New(store, cache.Options{
		UseStore:   cfg.Cache.Store != "none",
		DefaultTTL: cfg.Cache.DefaultTTL,
	})
	cartManager := cart.NewManager(cacheManager)

	// Hosted relational backend
	var catalogRepo repository.CatalogRepository
	var orderRepo repository.OrderRepository
	db, err := sql.Open("mysql", cfg.Database.DSN())
	if err != nil {
		log.Printf("Warning: MySQL connection failed: %v", err)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Printf("Warning: MySQL ping failed: %v", err)
			db.Close()
		} else {
			catalogRepo = repository.NewMySQLCatalogRepository(db)
			orderRepo = repository.NewMySQLOrderRepository(db)
			defer db.Close()
			log.Println("MySQL backend initialized")
		}
	}

	catalogService := service.NewCatalogService(catalogRepo, cacheManager)
	orderService := service.NewOrderService(orderRepo, cartManager)
	cleanupService := service.NewCleanupService(store)

	signer := assets.NewSigner(cfg.Assets.CloudName, cfg.Assets.APIKey, cfg.Assets.APISecret)
	if signer == nil {
		log.Println("Image upload signing disabled (no credentials)")
	}

	healthHandler := handler.New(cfg.App.Version)
	cartHandler := handler.NewCartHandler(binding.NewCartBinding(cartManager))
	adminHandler := handler.NewAdminHandler(cacheManager, cleanupService)
	uploadHandler := handler.NewUploadHandler(signer)

	var catalogHandler *handler.CatalogHandler
	if catalogService != nil {
		catalogHandler = handler.NewCatalogHandler(catalogService)
	}
	var orderHandler *handler.OrderHandler
	if orderService != nil {
		orderHandler = handler.NewOrderHandler(orderService)
	}

	r := router.New(router.Config{
		Handler:        healthHandler,
		CatalogHandler: catalogHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		AdminHandler:   adminHandler,
		UploadHandler:  uploadHandler,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
