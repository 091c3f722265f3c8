package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/catalog-browser/internal/catalog"
	"github.com/Veraticus/catalog-browser/internal/config"
	"github.com/Veraticus/catalog-browser/internal/dataset"
	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/service"
	"github.com/Veraticus/catalog-browser/internal/storage"
)

// openStorage opens the catalog database and brings its schema up to date.
func openStorage(ctx context.Context, dbPath string) (service.CatalogStore, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newSource resolves the configured dataset source. The returned func releases it.
func newSource(ctx context.Context, cfg config.Config) (dataset.Source, func(), error) {
	noop := func() {}

	switch cfg.Data.Source {
	case config.SourceEmbedded:
		return dataset.EmbeddedSource{}, noop, nil
	case config.SourceFile:
		src, err := dataset.NewFileSource(cfg.Data.Path)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil
	case config.SourceSQLite:
		store, err := openStorage(ctx, cfg.Database.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// fileOrEmbedded returns the file source for path, or the built-in catalog when path is empty.
func fileOrEmbedded(path string) (dataset.Source, error) {
	if path == "" {
		return dataset.EmbeddedSource{}, nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return dataset.NewFileSource(expanded)
}

// loadCatalog reads, validates and joins the configured catalog.
func loadCatalog(ctx context.Context, cfg config.Config) (model.Dataset, []model.EnrichedProduct, error) {
	src, release, err := newSource(ctx, cfg)
	if err != nil {
		return model.Dataset{}, nil, err
	}
	defer release()

	ds, err := dataset.Load(ctx, src)
	if err != nil {
		return model.Dataset{}, nil, err
	}

	products, err := catalog.Build(ds)
	if err != nil {
		return model.Dataset{}, nil, fmt.Errorf("%s: %w", src.Name(), err)
	}

	return ds, products, nil
}
