package services

import (
	"context"

	"academy/internal/cache"
	"academy/internal/domain"
	"academy/internal/utils"
)

const fallbackPageSize = 10

type catalogStore interface {
	Find(ctx context.Context, q domain.CatalogQuery) ([]domain.CourseSummary, error)
	Count(ctx context.Context, q domain.CatalogQuery) (int, error)
}

type scopeResolver interface {
	ExpandScope(ctx context.Context, categoryID int64) ([]int64, error)
}

// CatalogService composes scope expansion, the typed query plan,
// aggregates and tagging into one paginated result. Each call is
// self-contained; the only cross-call state is the optional cache.
type CatalogService struct {
	Store           catalogStore
	Categories      scopeResolver
	Cache           *cache.CatalogCache
	Tags            TagRules
	DefaultPageSize int
}

func (s CatalogService) defaultPageSize() int {
	if s.DefaultPageSize > 0 {
		return s.DefaultPageSize
	}
	return fallbackPageSize
}

// SearchCourses runs a text search. Status is caller policy: public
// routes force active, admin routes pass their filter through.
func (s CatalogService) SearchCourses(ctx context.Context, req domain.SearchRequest, status domain.CourseStatus) (domain.ResultPage, error) {
	return s.query(ctx, req.Query, req.CategoryID, status, req.Sort, req.Page, req.PageSize)
}

// ListCourses is non-text browsing. With an empty query the matcher is
// bypassed entirely, so this matches SearchCourses on the same filters.
func (s CatalogService) ListCourses(ctx context.Context, f domain.ListFilters) (domain.ResultPage, error) {
	return s.query(ctx, "", f.CategoryID, f.Status, domain.SortNewest, f.Page, f.PageSize)
}

func (s CatalogService) query(ctx context.Context, text string, categoryID int64, status domain.CourseStatus, sort domain.SortMode, page, pageSize int) (domain.ResultPage, error) {
	// Pagination input is caller-supplied and untrusted.
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.defaultPageSize()
	}

	q := domain.CatalogQuery{
		Status:   status,
		Text:     utils.TrimOrEmpty(text),
		Sort:     domain.ParseSortMode(string(sort)),
		Page:     page,
		PageSize: pageSize,
	}
	if categoryID > 0 {
		scope, err := s.Categories.ExpandScope(ctx, categoryID)
		if err != nil {
			return domain.ResultPage{}, err
		}
		q.CategoryIDs = scope
	}

	key := cache.Key(q)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		return cached, nil
	}

	// Count runs against the same predicate before pagination, so totals
	// describe the filtered set even when the page lands past the end.
	total, err := s.Store.Count(ctx, q)
	if err != nil {
		return domain.ResultPage{}, domain.InternalError{Msg: "catalog count failed", Err: err}
	}

	items, err := s.Store.Find(ctx, q)
	if err != nil {
		return domain.ResultPage{}, domain.InternalError{Msg: "catalog query failed", Err: err}
	}
	s.Tags.Apply(items)

	result := domain.ResultPage{
		Items:      items,
		Pagination: domain.NewPagination(q.Page, q.PageSize, total),
	}
	s.Cache.Set(ctx, key, result)
	return result, nil
}
