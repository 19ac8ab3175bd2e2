package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmoldabe-dev/subkeep/internal/config"
	"github.com/mmoldabe-dev/subkeep/internal/storage/postgres"
	"github.com/mmoldabe-dev/subkeep/pkg/logger"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of migrating up")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil && !errors.Is(err, config.ErrMissingJWTSecret) {
		fmt.Printf("Error to load config: %s", err)
		os.Exit(1)
	}
	log := logger.SetupLogger(cfg.Logger.Level, cfg.Logger.Format, "subkeep-migrate")

	if *down > 0 {
		err = postgres.RollbackMigrations(cfg, log, *down)
	} else {
		err = postgres.RunMigrations(cfg, log)
	}
	if err != nil {
		log.Error("migration failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("schema is up to date")
}
