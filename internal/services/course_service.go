package services

import (
	"context"

	"academy/internal/domain"

	"github.com/rs/zerolog/log"
)

const (
	defaultRailLimit      = 10
	defaultReviewPageSize = 5
)

type courseStore interface {
	FindByID(ctx context.Context, id int64) (domain.CourseDetail, error)
	IncrementViews(ctx context.Context, id int64) error
}

type railStore interface {
	TopViewed(ctx context.Context, limit int) ([]domain.CourseSummary, error)
	TopNewest(ctx context.Context, limit int) ([]domain.CourseSummary, error)
}

type ratingStore interface {
	RatingFor(ctx context.Context, courseID int64) (domain.RatingAggregate, error)
	Distribution(ctx context.Context, courseID int64) ([]domain.RatingBucket, error)
	ListByCourse(ctx context.Context, courseID int64, page, pageSize int) ([]domain.Review, domain.Pagination, error)
}

type enrollmentStore interface {
	CountFor(ctx context.Context, courseID int64) (int, error)
}

// CourseService serves the course detail page and the home rails.
type CourseService struct {
	Courses     courseStore
	Rails       railStore
	Reviews     ratingStore
	Enrollments enrollmentStore
	Tags        TagRules
	RailLimit   int
}

func (s CourseService) railLimit() int {
	if s.RailLimit > 0 {
		return s.RailLimit
	}
	return defaultRailLimit
}

// GetCourse loads a course with its read-time aggregates and bumps the
// view counter. The bump is best-effort; a failed counter update never
// breaks the page.
func (s CourseService) GetCourse(ctx context.Context, id int64) (domain.CourseDetail, error) {
	detail, err := s.Courses.FindByID(ctx, id)
	if err != nil {
		return domain.CourseDetail{}, err
	}

	rating, err := s.Reviews.RatingFor(ctx, id)
	if err != nil {
		return domain.CourseDetail{}, domain.InternalError{Msg: "rating aggregate failed", Err: err}
	}
	dist, err := s.Reviews.Distribution(ctx, id)
	if err != nil {
		return domain.CourseDetail{}, domain.InternalError{Msg: "rating distribution failed", Err: err}
	}
	enrolled, err := s.Enrollments.CountFor(ctx, id)
	if err != nil {
		return domain.CourseDetail{}, domain.InternalError{Msg: "enrollment count failed", Err: err}
	}

	detail.Rating = rating
	detail.Distribution = dist
	detail.EnrollmentCount = enrolled

	if err := s.Courses.IncrementViews(ctx, id); err != nil {
		log.Warn().Err(err).Int64("course_id", id).Msg("view counter update failed")
	}
	return detail, nil
}

// CourseReviews returns one page of reviews for a course.
func (s CourseService) CourseReviews(ctx context.Context, courseID int64, page, pageSize int) ([]domain.Review, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultReviewPageSize
	}
	reviews, pagination, err := s.Reviews.ListByCourse(ctx, courseID, page, pageSize)
	if err != nil {
		return nil, domain.Pagination{}, domain.InternalError{Msg: "review listing failed", Err: err}
	}
	return reviews, pagination, nil
}

// TopViewed returns the most viewed active courses, tagged.
func (s CourseService) TopViewed(ctx context.Context) ([]domain.CourseSummary, error) {
	items, err := s.Rails.TopViewed(ctx, s.railLimit())
	if err != nil {
		return nil, domain.InternalError{Msg: "top viewed query failed", Err: err}
	}
	s.Tags.Apply(items)
	return items, nil
}

// TopNewest returns the most recently updated active courses, tagged.
func (s CourseService) TopNewest(ctx context.Context) ([]domain.CourseSummary, error) {
	items, err := s.Rails.TopNewest(ctx, s.railLimit())
	if err != nil {
		return nil, domain.InternalError{Msg: "top newest query failed", Err: err}
	}
	s.Tags.Apply(items)
	return items, nil
}
