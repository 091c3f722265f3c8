package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/model"
)

// ImportRecord describes one dataset import.
type ImportRecord struct {
	ImportedAt time.Time
	Source     string
	ID         int64
	Users      int
	Categories int
	Products   int
}

// ProgressFunc is called once per record written during an import.
type ProgressFunc func()

// Name identifies the database as a dataset source.
func (s *SQLiteStorage) Name() string {
	return "sqlite:" + s.dbPath
}

// Load reads every user, category and product in the order they were imported.
func (s *SQLiteStorage) Load(ctx context.Context) (model.Dataset, error) {
	if err := validateContext(ctx); err != nil {
		return model.Dataset{}, err
	}

	users, err := s.getUsers(ctx)
	if err != nil {
		return model.Dataset{}, err
	}
	categories, err := s.getCategories(ctx)
	if err != nil {
		return model.Dataset{}, err
	}
	products, err := s.getProducts(ctx)
	if err != nil {
		return model.Dataset{}, err
	}

	slog.Debug("retrieved catalog",
		"users", len(users),
		"categories", len(categories),
		"products", len(products))

	return model.Dataset{
		Users:      users,
		Categories: categories,
		Products:   products,
	}, nil
}

// ReplaceDataset swaps the stored catalog for ds in a single transaction.
func (s *SQLiteStorage) ReplaceDataset(ctx context.Context, ds model.Dataset, source string, progress ProgressFunc) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := requireArg(source, "import source"); err != nil {
		return err
	}
	if progress == nil {
		progress = func() {}
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"products", "categories", "users"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		userStmt, err := tx.PrepareContext(ctx, `INSERT INTO users (id, name, sex, position) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare user insert: %w", err)
		}
		defer userStmt.Close()

		for i, u := range ds.Users {
			if _, err := userStmt.ExecContext(ctx, u.ID, u.Name, string(u.Sex), i); err != nil {
				return fmt.Errorf("failed to insert user %d: %w", u.ID, err)
			}
			progress()
		}

		categoryStmt, err := tx.PrepareContext(ctx, `INSERT INTO categories (id, title, icon, owner_id, position) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare category insert: %w", err)
		}
		defer categoryStmt.Close()

		for i, c := range ds.Categories {
			if _, err := categoryStmt.ExecContext(ctx, c.ID, c.Title, c.Icon, c.OwnerID, i); err != nil {
				return fmt.Errorf("failed to insert category %d: %w", c.ID, err)
			}
			progress()
		}

		productStmt, err := tx.PrepareContext(ctx, `INSERT INTO products (id, name, category_id, position) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare product insert: %w", err)
		}
		defer productStmt.Close()

		for i, p := range ds.Products {
			if _, err := productStmt.ExecContext(ctx, p.ID, p.Name, p.CategoryID, i); err != nil {
				return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
			}
			progress()
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO imports (source, users, categories, products) VALUES (?, ?, ?, ?)`,
			source, len(ds.Users), len(ds.Categories), len(ds.Products),
		); err != nil {
			return fmt.Errorf("failed to record import: %w", err)
		}

		return nil
	})
	if err != nil {
		common.LogError(err, "Catalog import rolled back", common.Fields{
			"database": s.dbPath,
			"source":   source,
		})
		return err
	}

	common.LogInfo("Catalog imported", common.Fields{
		"database":   s.dbPath,
		"source":     source,
		"users":      len(ds.Users),
		"categories": len(ds.Categories),
		"products":   len(ds.Products),
	})
	return nil
}

// LastImport returns the most recent import, or common.ErrNotFound.
func (s *SQLiteStorage) LastImport(ctx context.Context) (*ImportRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var rec ImportRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, users, categories, products, imported_at
		FROM imports
		ORDER BY id DESC
		LIMIT 1`,
	).Scan(&rec.ID, &rec.Source, &rec.Users, &rec.Categories, &rec.Products, &rec.ImportedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query imports: %w", err)
	}

	return &rec, nil
}

func (s *SQLiteStorage) getUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, sex FROM users ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var sex string
		if err := rows.Scan(&u.ID, &u.Name, &sex); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Sex = model.Sex(sex)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func (s *SQLiteStorage) getCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, icon, owner_id FROM categories ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Icon, &c.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (s *SQLiteStorage) getProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category_id FROM products ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
