package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"academy/internal/domain"
)

// CatalogRepository runs the consolidated catalog query: one plan covers
// every filter/sort combination expressed by domain.CatalogQuery.
type CatalogRepository struct {
	DB      *sql.DB
	Matcher SearchMatcher
}

// catalogSelect joins category and instructor names plus the grouped
// rating/enrollment facts, COALESCEd to 0 so downstream math stays total.
const catalogSelect = `SELECT c.id, c.title, c.thumbnail, c.short_desc, c.price, c.promo_price, c.last_updated,
	cat.name AS category_name,
	u.name AS instructor_name,
	COALESCE(r.average_rating, 0) AS average_rating,
	COALESCE(r.rating_count, 0) AS rating_count,
	COALESCE(e.enrollment_count, 0) AS enrollment_count
FROM courses c
JOIN categories cat ON cat.id = c.category_id
JOIN users u ON u.id = c.instructor_id
LEFT JOIN (
	SELECT course_id, AVG(rating) AS average_rating, COUNT(id) AS rating_count
	FROM reviews GROUP BY course_id
) r ON r.course_id = c.id
LEFT JOIN (
	SELECT course_id, COUNT(user_id) AS enrollment_count
	FROM enrollments GROUP BY course_id
) e ON e.course_id = c.id`

// buildWhere renders the filter clause shared by Find and Count so the
// totals always describe the same filtered set the page came from.
func (r CatalogRepository) buildWhere(q domain.CatalogQuery) (string, []any) {
	conds := []string{}
	args := []any{}

	if len(q.CategoryIDs) > 0 {
		ph := make([]string, len(q.CategoryIDs))
		for i, id := range q.CategoryIDs {
			args = append(args, id)
			ph[i] = fmt.Sprintf("$%d", len(args))
		}
		conds = append(conds, "c.category_id IN ("+strings.Join(ph, ",")+")")
	}

	switch q.Status {
	case domain.StatusActive:
		conds = append(conds, "c.is_disabled = FALSE")
	case domain.StatusDisabled:
		conds = append(conds, "c.is_disabled = TRUE")
	}

	if cond, textArgs := r.Matcher.Condition(q.Text, len(args)+1); cond != "" {
		conds = append(conds, cond)
		args = append(args, textArgs...)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause maps the sort mode onto a total order; c.id breaks ties so
// consecutive pages never overlap. Relevance degrades to newest because
// the matcher produces no score to rank by.
func orderClause(sort domain.SortMode) string {
	switch sort {
	case domain.SortPriceAsc:
		return " ORDER BY LEAST(c.price, COALESCE(c.promo_price, c.price)) ASC, c.id DESC"
	case domain.SortPriceDesc:
		return " ORDER BY LEAST(c.price, COALESCE(c.promo_price, c.price)) DESC, c.id DESC"
	case domain.SortRating:
		return " ORDER BY r.average_rating DESC NULLS LAST, r.rating_count DESC NULLS LAST, c.id DESC"
	case domain.SortPopular:
		return " ORDER BY e.enrollment_count DESC NULLS LAST, c.id DESC"
	default:
		return " ORDER BY c.last_updated DESC, c.id DESC"
	}
}

// Find returns the requested page of course summaries.
func (r CatalogRepository) Find(ctx context.Context, q domain.CatalogQuery) ([]domain.CourseSummary, error) {
	where, args := r.buildWhere(q)
	query := catalogSelect + where + orderClause(q.Sort) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.PageSize, q.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// Count returns the size of the filtered set before pagination.
func (r CatalogRepository) Count(ctx context.Context, q domain.CatalogQuery) (int, error) {
	where, args := r.buildWhere(q)
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM courses c"+where, args...).Scan(&n)
	return n, err
}

// TopViewed returns the most viewed active courses for the home rails.
func (r CatalogRepository) TopViewed(ctx context.Context, limit int) ([]domain.CourseSummary, error) {
	return r.topBy(ctx, " ORDER BY c.views DESC, c.id DESC", limit)
}

// TopNewest returns the most recently updated active courses.
func (r CatalogRepository) TopNewest(ctx context.Context, limit int) ([]domain.CourseSummary, error) {
	return r.topBy(ctx, " ORDER BY c.last_updated DESC, c.id DESC", limit)
}

func (r CatalogRepository) topBy(ctx context.Context, order string, limit int) ([]domain.CourseSummary, error) {
	query := catalogSelect + " WHERE c.is_disabled = FALSE" + order + " LIMIT $1"
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]domain.CourseSummary, error) {
	out := []domain.CourseSummary{}
	for rows.Next() {
		var (
			cs    domain.CourseSummary
			promo sql.NullFloat64
			avg   sql.NullFloat64
		)
		if err := rows.Scan(
			&cs.ID, &cs.Title, &cs.Thumbnail, &cs.ShortDesc, &cs.Price, &promo, &cs.LastUpdated,
			&cs.CategoryName, &cs.InstructorName,
			&avg, &cs.RatingCount, &cs.EnrollmentCount,
		); err != nil {
			return nil, err
		}
		if promo.Valid {
			p := promo.Float64
			cs.PromoPrice = &p
		}
		cs.AverageRating = roundRating(avg)
		out = append(out, cs)
	}
	return out, rows.Err()
}

// roundRating coerces the driver's decimal (possibly NULL) into a
// one-decimal float64. Absent aggregates become 0, never null, so
// comparison and display logic stay total.
func roundRating(v sql.NullFloat64) float64 {
	if !v.Valid {
		return 0
	}
	return math.Round(v.Float64*10) / 10
}
