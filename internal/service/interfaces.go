// Package service defines the interfaces shared between the CLI, the TUI and storage.
package service

import (
	"context"

	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/storage"
)

// CatalogStore defines the contract for the catalog database.
type CatalogStore interface {
	// Name identifies the store as a dataset source.
	Name() string
	// Load reads the full reference dataset.
	Load(ctx context.Context) (model.Dataset, error)
	// ReplaceDataset atomically swaps the stored catalog.
	ReplaceDataset(ctx context.Context, ds model.Dataset, source string, progress storage.ProgressFunc) error
	// LastImport reports the latest import.
	LastImport(ctx context.Context) (*storage.ImportRecord, error)

	// Database management
	Migrate(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int, error)
	Close() error
}

var _ CatalogStore = (*storage.SQLiteStorage)(nil)
