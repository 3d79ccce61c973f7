package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newReviewRepo(t *testing.T) (ReviewRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return ReviewRepository{DB: db}, mock, func() { db.Close() }
}

func TestRatingForUnreviewedCourseIsZeroNotNull(t *testing.T) {
	repo, mock, done := newReviewRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\)`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"avg_rating", "review_count"}).AddRow(0.0, 0))

	agg, err := repo.RatingFor(context.Background(), 9)
	if err != nil {
		t.Fatalf("RatingFor error: %v", err)
	}
	if agg.Average != 0 || agg.Count != 0 {
		t.Fatalf("expected zero aggregate, got %+v", agg)
	}
}

func TestRatingForRoundsToOneDecimal(t *testing.T) {
	repo, mock, done := newReviewRepo(t)
	defer done()

	mock.ExpectQuery(`FROM reviews WHERE course_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"avg_rating", "review_count"}).AddRow(4.4666, 3))

	agg, err := repo.RatingFor(context.Background(), 5)
	if err != nil {
		t.Fatalf("RatingFor error: %v", err)
	}
	if agg.Average != 4.5 {
		t.Fatalf("expected 4.5, got %v", agg.Average)
	}
	if agg.Count != 3 {
		t.Fatalf("expected count 3, got %d", agg.Count)
	}
}

func TestDistributionZeroFillsFiveBuckets(t *testing.T) {
	repo, mock, done := newReviewRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT rating, COUNT\(id\)`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).
			AddRow(5, 2).
			AddRow(3, 1))

	dist, err := repo.Distribution(context.Background(), 5)
	if err != nil {
		t.Fatalf("Distribution error: %v", err)
	}
	if len(dist) != 5 {
		t.Fatalf("expected exactly 5 buckets, got %d", len(dist))
	}
	sum := 0
	for i, bucket := range dist {
		if bucket.Rating != 5-i {
			t.Fatalf("bucket %d has rating %d, want %d", i, bucket.Rating, 5-i)
		}
		sum += bucket.Count
	}
	if sum != 3 {
		t.Fatalf("bucket counts should sum to the review count, got %d", sum)
	}
	if dist[0].Count != 2 || dist[2].Count != 1 || dist[1].Count != 0 {
		t.Fatalf("unexpected distribution: %+v", dist)
	}
}

func TestRatingsForBatchesOneQuery(t *testing.T) {
	repo, mock, done := newReviewRepo(t)
	defer done()

	mock.ExpectQuery(`WHERE course_id IN \(\$1,\$2,\$3\) GROUP BY course_id`).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "average_rating", "rating_count"}).
			AddRow(int64(1), 4.0, 2).
			AddRow(int64(3), 2.25, 4))

	aggs, err := repo.RatingsFor(context.Background(), []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("RatingsFor error: %v", err)
	}
	if len(aggs) != 3 {
		t.Fatalf("every requested id must be present, got %d entries", len(aggs))
	}
	if aggs[2].Average != 0 || aggs[2].Count != 0 {
		t.Fatalf("unreviewed course must be zero-valued, got %+v", aggs[2])
	}
	if aggs[3].Average != 2.3 {
		t.Fatalf("expected rounded 2.3, got %v", aggs[3].Average)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRatingsForEmptySetSkipsQuery(t *testing.T) {
	repo, mock, done := newReviewRepo(t)
	defer done()

	aggs, err := repo.RatingsFor(context.Background(), nil)
	if err != nil {
		t.Fatalf("RatingsFor error: %v", err)
	}
	if len(aggs) != 0 {
		t.Fatalf("expected empty map, got %v", aggs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should run for an empty set: %v", err)
	}
}
