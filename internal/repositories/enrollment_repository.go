package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// EnrollmentRepository exposes enrollment counts; the engine never writes
// enrollments, it only reads them as a count source.
type EnrollmentRepository struct {
	DB *sql.DB
}

// CountFor returns the number of enrollments for a course, 0 if none.
func (r EnrollmentRepository) CountFor(ctx context.Context, courseID int64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(user_id) FROM enrollments WHERE course_id = $1`, courseID,
	).Scan(&n)
	return n, err
}

// CountsFor batches counts for a set of course ids in one pass; every
// requested id appears in the map, zero when no one is enrolled.
func (r EnrollmentRepository) CountsFor(ctx context.Context, courseIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(courseIDs))
	for _, id := range courseIDs {
		out[id] = 0
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
		`SELECT course_id, COUNT(user_id) AS enrollment_count FROM enrollments WHERE course_id IN (`+
			strings.Join(ph, ",")+`) GROUP BY course_id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id int64
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}
