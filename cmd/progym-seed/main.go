// Command progym-seed loads the exercise catalog from a YAML file into the database.
// Running it twice with the same file leaves the catalog unchanged.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"progym-go/internal/config"
	"progym-go/internal/db"
	catalogdomain "progym-go/internal/domain/catalog"
	catalogrepo "progym-go/internal/repository/postgres/catalog"
	"progym-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv().With("command", "seed")

	cfg, err := config.Load(log)
	if err != nil {
		log.Critical("seed: load config failed", "err", err)
		os.Exit(1)
	}

	file := flag.String("file", cfg.Catalog.SeedFile, "path to the catalog YAML file")
	migrateFirst := flag.Bool("migrate", true, "apply pending migrations before seeding")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	os.Exit(run(cfg, log, *file, *migrateFirst, *timeout))
}

func run(cfg config.Config, log logger.Logger, file string, migrateFirst bool, timeout time.Duration) int {
	seed, err := catalogdomain.LoadSeed(file)
	if err != nil {
		log.Critical("seed: read seed failed", "file", file, "err", err)
		return 1
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		log.Critical("seed: connect failed", "err", err)
		return 1
	}
	defer func() {
		if err := db.Close(dbConn); err != nil {
			log.Error("seed: close failed", "err", err)
		}
	}()

	if migrateFirst {
		if err := db.Migrate(cfg.DB.URL(), log); err != nil {
			log.Critical("seed: migrate failed", "err", err)
			return 1
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	service := catalogdomain.NewService(catalogrepo.NewPostgres(dbConn))
	result, err := service.Import(ctx, seed)
	if err != nil {
		log.Critical("seed: import failed", "file", file, "err", err)
		return 1
	}

	log.Info("seed: catalog imported",
		"file", file,
		"muscle_groups", result.MuscleGroups,
		"exercises", result.Exercises,
		"restriction_rules", result.RestrictionRules,
		"muscle_focuses", result.MuscleFocuses,
	)
	return 0
}
