package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"academy/internal/domain"
)

// ReviewRepository exposes rating facts derived from the reviews table.
type ReviewRepository struct {
	DB *sql.DB
}

// RatingFor returns the mean rating (one decimal) and review count for a
// course. A course with no reviews yields {0, 0}.
func (r ReviewRepository) RatingFor(ctx context.Context, courseID int64) (domain.RatingAggregate, error) {
	var (
		avg   sql.NullFloat64
		count int
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(id) AS review_count FROM reviews WHERE course_id = $1`,
		courseID,
	).Scan(&avg, &count)
	if err != nil {
		return domain.RatingAggregate{}, err
	}
	return domain.RatingAggregate{Average: roundRating(avg), Count: count}, nil
}

// Distribution returns exactly five buckets, stars 5 down to 1, with
// empty buckets zero-filled rather than omitted.
func (r ReviewRepository) Distribution(ctx context.Context, courseID int64) ([]domain.RatingBucket, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT rating, COUNT(id) AS count FROM reviews WHERE course_id = $1 GROUP BY rating`,
		courseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var star, n int
		if err := rows.Scan(&star, &n); err != nil {
			return nil, err
		}
		counts[star] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.RatingBucket, 0, 5)
	for star := 5; star >= 1; star-- {
		out = append(out, domain.RatingBucket{Rating: star, Count: counts[star]})
	}
	return out, nil
}

// RatingsFor batches aggregates for a set of course ids in one pass, so a
// result page never fans out into per-course queries. Every requested id
// is present in the map, zero-valued when unreviewed.
func (r ReviewRepository) RatingsFor(ctx context.Context, courseIDs []int64) (map[int64]domain.RatingAggregate, error) {
	out := make(map[int64]domain.RatingAggregate, len(courseIDs))
	for _, id := range courseIDs {
		out[id] = domain.RatingAggregate{}
	}
	if len(courseIDs) == 0 {
		return out, nil
	}

	ph := make([]string, len(courseIDs))
	args := make([]any, len(courseIDs))
	for i, id := range courseIDs {
		args[i] = id
		ph[i] = fmt.Sprintf("$%d", i+1)
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT course_id, AVG(rating) AS average_rating, COUNT(id) AS rating_count FROM reviews WHERE course_id IN (`+
			strings.Join(ph, ",")+`) GROUP BY course_id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			avg   sql.NullFloat64
			count int
		)
		if err := rows.Scan(&id, &avg, &count); err != nil {
			return nil, err
		}
		out[id] = domain.RatingAggregate{Average: roundRating(avg), Count: count}
	}
	return out, rows.Err()
}

// ListByCourse returns one page of reviews with reviewer names joined in,
// newest first.
func (r ReviewRepository) ListByCourse(ctx context.Context, courseID int64, page, pageSize int) ([]domain.Review, domain.Pagination, error) {
	offset := (page - 1) * pageSize
	rows, err := r.DB.QueryContext(ctx,
		`SELECT rv.id, rv.course_id, rv.user_id, u.name AS user_name, rv.rating, rv.comment, rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.course_id = $1
		ORDER BY rv.created_at DESC, rv.id DESC
		LIMIT $2 OFFSET $3`,
		courseID, pageSize, offset,
	)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.CourseID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, domain.Pagination{}, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Pagination{}, err
	}

	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(id) FROM reviews WHERE course_id = $1`, courseID,
	).Scan(&total); err != nil {
		return nil, domain.Pagination{}, err
	}

	return reviews, domain.NewPagination(page, pageSize, total), nil
}
