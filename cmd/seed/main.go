package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/taxpractice/backend/internal/infrastructure/config"
	"github.com/taxpractice/backend/internal/infrastructure/logger"
	"github.com/taxpractice/backend/internal/infrastructure/persistence"
	"github.com/taxpractice/backend/internal/infrastructure/seed"
)

func main() {
	var randomSeed uint64
	flag.Uint64Var(&randomSeed, "seed", 0, "Random seed (0 for non-deterministic output)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	seeder := seed.New(
		persistence.NewGormClientRepository(db.DB),
		persistence.NewGormIncomeRepository(db.DB),
		persistence.NewGormIncomeTypeRepository(db.DB),
		persistence.NewGormBusinessRepository(db.DB),
		persistence.NewGormFilingTypeRepository(db.DB),
		cfg.Seed,
		log,
		randomSeed,
	)

	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding complete")
}
