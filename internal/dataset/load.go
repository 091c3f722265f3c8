package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/catalog-browser/internal/model"
)

// Load reads the dataset from src and validates it.
func Load(ctx context.Context, src Source) (model.Dataset, error) {
	ds, err := src.Load(ctx)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to load %s dataset: %w", src.Name(), err)
	}

	if err := Validate(ds); err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", src.Name(), err)
	}

	users, categories, products := ds.Counts()
	slog.Info("loaded catalog",
		"source", src.Name(),
		"users", users,
		"categories", categories,
		"products", products)

	return ds, nil
}
