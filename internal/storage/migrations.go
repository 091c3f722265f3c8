package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/catalog-browser/internal/common"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial catalog schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS users (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					sex TEXT NOT NULL DEFAULT ''
				)`,
				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY,
					title TEXT NOT NULL,
					icon TEXT NOT NULL DEFAULT '',
					owner_id INTEGER NOT NULL REFERENCES users(id)
				)`,
				`CREATE TABLE IF NOT EXISTS products (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					category_id INTEGER NOT NULL REFERENCES categories(id)
				)`,
			}
			return execAll(tx, queries)
		},
	},
	{
		Version:     2,
		Description: "Add import bookkeeping and lookup indexes",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_categories_owner ON categories(owner_id)`,
				`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
				`CREATE TABLE IF NOT EXISTS imports (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					source TEXT NOT NULL,
					users INTEGER NOT NULL,
					categories INTEGER NOT NULL,
					products INTEGER NOT NULL,
					imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}
			return execAll(tx, queries)
		},
	},
	{
		Version:     3,
		Description: "Keep records in dataset order",
		Up: func(tx *sql.Tx) error {
			var queries []string
			for _, table := range []string{"users", "categories", "products"} {
				queries = append(queries,
					`ALTER TABLE `+table+` ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,
					// Rows imported before this migration keep their id order.
					`UPDATE `+table+` SET position = id`,
					`CREATE INDEX IF NOT EXISTS idx_`+table+`_position ON `+table+`(position)`,
				)
			}
			return execAll(tx, queries)
		},
	},
}

func execAll(tx *sql.Tx, queries []string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Migrate brings the schema up to ExpectedSchemaVersion.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("%w: schema version mismatch: expected %d, got %d", common.ErrDatabaseCorrupted, ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion returns the applied schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
