package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testDataset() model.Dataset {
	return model.Dataset{
		Users: []model.User{
			{ID: 1, Name: "Roma", Sex: model.SexMale},
			{ID: 2, Name: "Anna", Sex: model.SexFemale},
		},
		Categories: []model.Category{
			{ID: 1, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		},
		Products: []model.Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Apple", CategoryID: 1},
			{ID: 3, Name: "Banana", CategoryID: 1},
		},
	}
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestSQLiteStorage_Migrate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op.
	require.NoError(t, store.Migrate(ctx))

	for _, table := range []string{"users", "categories", "products", "imports"} {
		var count int
		err := store.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestSQLiteStorage_ReplaceAndLoad(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	calls := 0
	err := store.ReplaceDataset(ctx, testDataset(), "test.json", func() { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 7, calls)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testDataset(), got)
}

func TestSQLiteStorage_LoadKeepsDatasetOrder(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	ds := model.Dataset{
		Users: []model.User{
			{ID: 2, Name: "Anna", Sex: model.SexFemale},
			{ID: 1, Name: "Roma", Sex: model.SexMale},
		},
		Categories: []model.Category{
			{ID: 7, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 3, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		},
		Products: []model.Product{
			{ID: 3, Name: "Cherry", CategoryID: 7},
			{ID: 1, Name: "Apple", CategoryID: 7},
			{ID: 2, Name: "Beer", CategoryID: 3},
		},
	}
	require.NoError(t, store.ReplaceDataset(ctx, ds, "unordered.json", nil))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestSQLiteStorage_ReplaceRequiresSource(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.ReplaceDataset(context.Background(), testDataset(), " ", nil)
	require.ErrorIs(t, err, ErrMissingArgument)

	_, err = store.LastImport(context.Background())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_MigrateBackfillsPositions(t *testing.T) {
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	// Build a version 2 database by hand.
	for _, m := range migrations[:2] {
		tx, err := store.db.BeginTx(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, m.Up(tx))
		require.NoError(t, tx.Commit())
	}
	_, err = store.db.ExecContext(ctx, "PRAGMA user_version = 2")
	require.NoError(t, err)
	_, err = store.db.ExecContext(ctx, `INSERT INTO users (id, name, sex) VALUES (2, 'Anna', 'f'), (1, 'Roma', 'm')`)
	require.NoError(t, err)

	require.NoError(t, store.Migrate(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Users, 2)
	assert.Equal(t, "Roma", got.Users[0].Name)
	assert.Equal(t, "Anna", got.Users[1].Name)
}

func TestSQLiteStorage_ReplaceOverwrites(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.ReplaceDataset(ctx, testDataset(), "first", nil))

	smaller := model.Dataset{
		Users:      []model.User{{ID: 5, Name: "Max", Sex: model.SexMale}},
		Categories: []model.Category{{ID: 9, Title: "Clothes", Icon: "👚", OwnerID: 5}},
		Products:   []model.Product{{ID: 4, Name: "Jacket", CategoryID: 9}},
	}
	require.NoError(t, store.ReplaceDataset(ctx, smaller, "second", nil))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, smaller, got)

	rec, err := store.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", rec.Source)
	assert.Equal(t, 1, rec.Products)
	assert.False(t, rec.ImportedAt.IsZero())
}

func TestSQLiteStorage_ReplaceRollsBackOnBrokenReference(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.ReplaceDataset(ctx, testDataset(), "good", nil))

	broken := testDataset()
	broken.Products = append(broken.Products, model.Product{ID: 10, Name: "Ghost", CategoryID: 77})

	err := store.ReplaceDataset(ctx, broken, "broken", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 10")

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testDataset(), got, "failed import must leave previous catalog intact")
}

func TestSQLiteStorage_LastImportEmpty(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.LastImport(context.Background())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_LoadEmpty(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Users)
	assert.Empty(t, got.Categories)
	assert.Empty(t, got.Products)
	assert.Equal(t, "sqlite:"+store.Path(), store.Name())
}

func TestSQLiteStorage_MigrateRejectsNewerSchema(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	_, err := store.db.ExecContext(ctx, "PRAGMA user_version = 99")
	require.NoError(t, err)

	err = store.Migrate(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDatabaseCorrupted)
}
