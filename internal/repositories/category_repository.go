package repositories

import (
	"context"
	"database/sql"
	"errors"

	"academy/internal/domain"
)

// CategoryRepository reads the category forest; creation and editing
// belong to the admin collaborator.
type CategoryRepository struct {
	DB *sql.DB
}

// FindAll returns every category, parents first.
func (r CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, parent_id FROM categories ORDER BY parent_id ASC NULLS FIRST, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

// FindByID loads one category, mapping a missing row to a domain error.
func (r CategoryRepository) FindByID(ctx context.Context, id int64) (domain.Category, error) {
	var (
		cat    domain.Category
		parent sql.NullInt64
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, parent_id FROM categories WHERE id = $1`, id,
	).Scan(&cat.ID, &cat.Name, &parent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.NotFoundError{Resource: "category", Err: err}
		}
		return domain.Category{}, err
	}
	if parent.Valid {
		p := parent.Int64
		cat.ParentID = &p
	}
	return cat, nil
}

// FindChildren returns the direct children of a category, name ascending.
func (r CategoryRepository) FindChildren(ctx context.Context, parentID int64) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, parent_id FROM categories WHERE parent_id = $1 ORDER BY name ASC`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

func scanCategories(rows *sql.Rows) ([]domain.Category, error) {
	out := []domain.Category{}
	for rows.Next() {
		var (
			cat    domain.Category
			parent sql.NullInt64
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &parent); err != nil {
			return nil, err
		}
		if parent.Valid {
			p := parent.Int64
			cat.ParentID = &p
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}
