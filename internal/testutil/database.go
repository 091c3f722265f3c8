// Package testutil provides test utilities shared across packages: dataset builders
// and an isolated, migrated SQLite catalog.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/storage"
)

// TestDB represents a seeded in-memory catalog database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	Dataset model.Dataset
}

// SetupTestDB creates an in-memory database seeded with ds.
// Migrations run automatically and the database is closed when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.NewDatasetBuilder().WithStore().Build())
func SetupTestDB(t *testing.T, ds model.Dataset) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(ds.Users)+len(ds.Categories)+len(ds.Products) > 0 {
		if err := store.ReplaceDataset(ctx, ds, "testutil", nil); err != nil {
			t.Fatalf("failed to seed dataset: %v", err)
		}
	}

	return &TestDB{
		Storage: store,
		Dataset: ds,
	}
}
