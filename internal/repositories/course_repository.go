package repositories

import (
	"context"
	"database/sql"
	"errors"

	"academy/internal/domain"
)

// CourseRepository reads single courses for the detail page.
type CourseRepository struct {
	DB *sql.DB
}

// FindByID loads a course with its category, parent category and
// instructor names joined in. Aggregates are filled in by the service.
func (r CourseRepository) FindByID(ctx context.Context, id int64) (domain.CourseDetail, error) {
	var (
		d      domain.CourseDetail
		promo  sql.NullFloat64
		parent sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT c.id, c.title, c.short_desc, c.full_desc, c.price, c.promo_price,
			c.category_id, c.instructor_id, c.views, c.last_updated,
			c.is_disabled, c.is_completed, c.thumbnail,
			cat.name AS category_name,
			parent_cat.name AS parent_category_name,
			u.name AS instructor_name
		FROM courses c
		JOIN categories cat ON cat.id = c.category_id
		LEFT JOIN categories parent_cat ON parent_cat.id = cat.parent_id
		JOIN users u ON u.id = c.instructor_id
		WHERE c.id = $1`,
		id,
	).Scan(
		&d.ID, &d.Title, &d.ShortDesc, &d.FullDesc, &d.Price, &promo,
		&d.CategoryID, &d.InstructorID, &d.Views, &d.LastUpdated,
		&d.IsDisabled, &d.IsCompleted, &d.Thumbnail,
		&d.CategoryName, &parent, &d.InstructorName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CourseDetail{}, domain.NotFoundError{Resource: "course", Err: err}
		}
		return domain.CourseDetail{}, err
	}
	if promo.Valid {
		p := promo.Float64
		d.PromoPrice = &p
	}
	if parent.Valid {
		d.ParentCategoryName = parent.String
	}
	return d, nil
}

// IncrementViews bumps the view counter; detail pages call it best-effort.
func (r CourseRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE courses SET views = views + 1 WHERE id = $1`, id)
	return err
}
