package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/onlinz/returns/internal/config"
)

// RunMigrations applies all pending receipt table migrations for driver.
// The file store has no schema, so it is a no-op there.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	return runMigrations(logger, "migrations", driver, connectionString)
}

func runMigrations(logger *slog.Logger, dir, driver, connectionString string) error {
	if driver == config.DriverFile {
		logger.Info("file receipt store has no migrations")
		return nil
	}

	logger.Info("running database migrations", slog.String("driver", driver))

	sourceURL, databaseURL, err := migrationURLs(dir, driver, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrationURLs maps a driver and its database/sql connection string to the
// migration source and database URLs golang-migrate expects.
func migrationURLs(dir, driver, connectionString string) (string, string, error) {
	switch driver {
	case config.DriverPostgres:
		return "file://" + filepath.ToSlash(filepath.Join(dir, "postgresql")), connectionString, nil
	case config.DriverMySQL:
		databaseURL := connectionString
		if !strings.HasPrefix(databaseURL, "mysql://") {
			databaseURL = "mysql://" + databaseURL
		}
		return "file://" + filepath.ToSlash(filepath.Join(dir, "mysql")), databaseURL, nil
	case config.DriverSQLite:
		path := strings.TrimPrefix(connectionString, "file:")
		if !strings.HasPrefix(path, "sqlite://") {
			path = "sqlite://" + path
		}
		return "file://" + filepath.ToSlash(filepath.Join(dir, "sqlite")), path, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}
