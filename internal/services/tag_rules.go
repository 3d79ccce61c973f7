package services

import (
	"time"

	"academy/internal/domain"
	"academy/internal/utils"
)

const (
	defaultBestsellerMin = 50
	defaultNewWindow     = 30 * 24 * time.Hour
)

// TagRules computes the derived bestseller/new labels. Both are stamped
// on the materialized page at read time; neither is persisted and neither
// participates in filtering.
type TagRules struct {
	BestsellerMin int           // strict lower bound on enrollments
	NewWindow     time.Duration // recency window for the "new" tag
	Now           func() time.Time
}

func (t TagRules) bestsellerMin() int {
	if t.BestsellerMin > 0 {
		return t.BestsellerMin
	}
	return defaultBestsellerMin
}

func (t TagRules) newWindow() time.Duration {
	if t.NewWindow > 0 {
		return t.NewWindow
	}
	return defaultNewWindow
}

func (t TagRules) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return utils.NowUTC()
}

// Apply stamps tags on a slice of summaries in place.
func (t TagRules) Apply(items []domain.CourseSummary) {
	cutoff := t.now().Add(-t.newWindow())
	for i := range items {
		items[i].IsBestseller = items[i].EnrollmentCount > t.bestsellerMin()
		items[i].IsNew = items[i].LastUpdated.After(cutoff)
	}
}
