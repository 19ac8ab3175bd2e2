package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/mmoldabe-dev/subkeep/internal/config"
)

// RunMigrations applies every pending migration from cfg.Migrations.Path.
func RunMigrations(cfg *config.Config, log *slog.Logger) error {
	return migrateWith(cfg, log, func(m *migrate.Migrate) error { return m.Up() })
}

// RollbackMigrations reverts the given number of migrations.
func RollbackMigrations(cfg *config.Config, log *slog.Logger, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}
	return migrateWith(cfg, log, func(m *migrate.Migrate) error { return m.Steps(-steps) })
}

func migrateWith(cfg *config.Config, log *slog.Logger, run func(*migrate.Migrate) error) error {
	const op = "storage.postgres.migrate"

	m, err := migrate.New("file://"+cfg.Migrations.Path, cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer m.Close()

	if err := run(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("migrations are up to date")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("%s: version: %w", op, err)
	}
	log.Info("migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}
