package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/api-sage/txn-dispute-engine/internal/adapter/repository/postgres"
	"github.com/api-sage/txn-dispute-engine/internal/config"
	"github.com/api-sage/txn-dispute-engine/internal/logger"
	"github.com/api-sage/txn-dispute-engine/internal/usecase/services"
)

func main() {
	// Logs go to stderr; stdout carries the account CSV only.
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		log.Fatal("usage: engine <transactions.csv>")
	}
	path := os.Args[1]

	if !strings.HasSuffix(path, ".csv") {
		logger.Warn("input file seems to not be a csv file", logger.Fields{"path": path})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	var archive services.ArchiveRepository
	if cfg.DatabaseDSN != "" {
		dbCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		db, err := postgres.Open(dbCtx, cfg.DatabaseDSN)
		if err != nil {
			cancel()
			log.Fatalf("open archive database: %v", err)
		}
		if err := postgres.RunMigrations(dbCtx, db, cfg.MigrationsDir); err != nil {
			cancel()
			log.Fatalf("run migrations: %v", err)
		}
		cancel()
		defer db.Close()
		archive = postgres.NewArchiveRepository(db)
	}

	input, err := os.Open(path)
	if err != nil {
		log.Fatalf("open input file: %v", err)
	}
	defer input.Close()

	runService := services.NewRunService(archive)
	if _, err := runService.Execute(ctx, input, os.Stdout); err != nil {
		log.Fatalf("execute run: %v", err)
	}
}
