package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/api-sage/txn-dispute-engine/internal/adapter/http/controller"
	"github.com/api-sage/txn-dispute-engine/internal/adapter/http/middleware"
	"github.com/api-sage/txn-dispute-engine/internal/adapter/http/router"
	"github.com/api-sage/txn-dispute-engine/internal/adapter/repository/postgres"
	"github.com/api-sage/txn-dispute-engine/internal/config"
	"github.com/api-sage/txn-dispute-engine/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var archive services.ArchiveRepository
	if cfg.DatabaseDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			cancel()
			log.Fatalf("open archive database: %v", err)
		}
		if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
			cancel()
			log.Fatalf("run migrations: %v", err)
		}
		cancel()
		defer db.Close()
		archive = postgres.NewArchiveRepository(db)
	}

	engineService := services.NewEngineService(archive)

	mux := router.New(
		controller.NewTransactionController(engineService),
		controller.NewAccountController(engineService),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("serve http: %v", err)
	}
}
