package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"academy/internal/domain"
)

type fakeCatalogStore struct {
	lastQuery  domain.CatalogQuery
	items      []domain.CourseSummary
	total      int
	findErr    error
	countErr   error
	findCalls  int
	countCalls int
}

func (f *fakeCatalogStore) Find(ctx context.Context, q domain.CatalogQuery) ([]domain.CourseSummary, error) {
	f.findCalls++
	f.lastQuery = q
	return f.items, f.findErr
}

func (f *fakeCatalogStore) Count(ctx context.Context, q domain.CatalogQuery) (int, error) {
	f.countCalls++
	f.lastQuery = q
	return f.total, f.countErr
}

type fixedScope struct {
	scope []int64
	err   error
}

func (f fixedScope) ExpandScope(ctx context.Context, categoryID int64) ([]int64, error) {
	return f.scope, f.err
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
}

func summaries(n int) []domain.CourseSummary {
	out := make([]domain.CourseSummary, n)
	for i := range out {
		out[i] = domain.CourseSummary{ID: int64(i + 1), LastUpdated: fixedNow().AddDate(0, -6, 0)}
	}
	return out
}

func TestListCoursesCategoryPageTotals(t *testing.T) {
	store := &fakeCatalogStore{items: summaries(10), total: 12}
	svc := CatalogService{
		Store:      store,
		Categories: fixedScope{scope: []int64{5, 8, 9}},
		Tags:       TagRules{Now: fixedNow},
	}

	page, err := svc.ListCourses(context.Background(), domain.ListFilters{
		CategoryID: 5,
		Status:     domain.StatusActive,
		Page:       1,
		PageSize:   10,
	})
	if err != nil {
		t.Fatalf("ListCourses error: %v", err)
	}

	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page.Items))
	}
	p := page.Pagination
	if p.Total != 12 || p.TotalPages != 2 || p.Page != 1 || p.PageSize != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	q := store.lastQuery
	if len(q.CategoryIDs) != 3 {
		t.Fatalf("category scope not applied: %v", q.CategoryIDs)
	}
	if q.Status != domain.StatusActive {
		t.Fatalf("status filter lost: %q", q.Status)
	}
	if q.Text != "" {
		t.Fatalf("list must not carry a text filter, got %q", q.Text)
	}
}

func TestPaginationInputIsCoerced(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := CatalogService{Store: store, Categories: fixedScope{}, Tags: TagRules{Now: fixedNow}}

	_, err := svc.ListCourses(context.Background(), domain.ListFilters{Page: -3, PageSize: 0})
	if err != nil {
		t.Fatalf("ListCourses error: %v", err)
	}
	if store.lastQuery.Page != 1 {
		t.Fatalf("negative page must coerce to 1, got %d", store.lastQuery.Page)
	}
	if store.lastQuery.PageSize != fallbackPageSize {
		t.Fatalf("zero page size must coerce to the default, got %d", store.lastQuery.PageSize)
	}
}

func TestUnknownSortFallsBackToNewest(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := CatalogService{Store: store, Categories: fixedScope{}, Tags: TagRules{Now: fixedNow}}

	_, err := svc.SearchCourses(context.Background(),
		domain.SearchRequest{Query: "go", Sort: domain.SortMode("cheapest_first"), Page: 1, PageSize: 6},
		domain.StatusActive)
	if err != nil {
		t.Fatalf("SearchCourses error: %v", err)
	}
	if store.lastQuery.Sort != domain.SortNewest {
		t.Fatalf("unknown sort must fall back to newest, got %q", store.lastQuery.Sort)
	}
}

func TestRatingSortReachesTheStore(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := CatalogService{Store: store, Categories: fixedScope{}, Tags: TagRules{Now: fixedNow}}

	_, err := svc.SearchCourses(context.Background(),
		domain.SearchRequest{Query: "sql", Sort: domain.SortRating, Page: 1, PageSize: 6},
		domain.StatusActive)
	if err != nil {
		t.Fatalf("SearchCourses error: %v", err)
	}
	if store.lastQuery.Sort != domain.SortRating {
		t.Fatalf("rating sort must pass through untouched, got %q", store.lastQuery.Sort)
	}
}

func TestEmptyQuerySearchEqualsList(t *testing.T) {
	store := &fakeCatalogStore{items: summaries(3), total: 3}
	svc := CatalogService{Store: store, Categories: fixedScope{scope: []int64{5}}, Tags: TagRules{Now: fixedNow}}

	searchPage, err := svc.SearchCourses(context.Background(),
		domain.SearchRequest{Query: "   ", CategoryID: 5, Sort: domain.SortNewest, Page: 2, PageSize: 6},
		domain.StatusActive)
	if err != nil {
		t.Fatalf("SearchCourses error: %v", err)
	}
	searchQuery := store.lastQuery

	listPage, err := svc.ListCourses(context.Background(),
		domain.ListFilters{CategoryID: 5, Status: domain.StatusActive, Page: 2, PageSize: 6})
	if err != nil {
		t.Fatalf("ListCourses error: %v", err)
	}

	if searchQuery.Text != "" {
		t.Fatalf("whitespace query must vanish, got %q", searchQuery.Text)
	}
	if len(searchPage.Items) != len(listPage.Items) || searchPage.Pagination != listPage.Pagination {
		t.Fatalf("blank-query search must match list results:\n%+v\n%+v", searchPage, listPage)
	}
	q := store.lastQuery
	if q.Text != searchQuery.Text || q.Sort != searchQuery.Sort || q.Page != searchQuery.Page || q.PageSize != searchQuery.PageSize || q.Status != searchQuery.Status {
		t.Fatalf("list and blank search must build the same plan:\n%+v\n%+v", searchQuery, q)
	}
}

func TestBestsellerBoundaryIsStrict(t *testing.T) {
	items := []domain.CourseSummary{
		{ID: 1, EnrollmentCount: 51, LastUpdated: fixedNow().AddDate(-1, 0, 0)},
		{ID: 2, EnrollmentCount: 50, LastUpdated: fixedNow().AddDate(-1, 0, 0)},
	}
	store := &fakeCatalogStore{items: items, total: 2}
	svc := CatalogService{Store: store, Categories: fixedScope{}, Tags: TagRules{Now: fixedNow}}

	page, err := svc.ListCourses(context.Background(), domain.ListFilters{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListCourses error: %v", err)
	}
	if !page.Items[0].IsBestseller {
		t.Fatalf("51 enrollments must be a bestseller")
	}
	if page.Items[1].IsBestseller {
		t.Fatalf("exactly 50 enrollments must not be a bestseller")
	}
}

func TestNewTagUsesThirtyDayWindow(t *testing.T) {
	items := []domain.CourseSummary{
		{ID: 1, LastUpdated: fixedNow().AddDate(0, 0, -29)},
		{ID: 2, LastUpdated: fixedNow().AddDate(0, 0, -31)},
	}
	store := &fakeCatalogStore{items: items, total: 2}
	svc := CatalogService{Store: store, Categories: fixedScope{}, Tags: TagRules{Now: fixedNow}}

	page, err := svc.ListCourses(context.Background(), domain.ListFilters{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListCourses error: %v", err)
	}
	if !page.Items[0].IsNew {
		t.Fatalf("course updated 29 days ago must be tagged new")
	}
	if page.Items[1].IsNew {
		t.Fatalf("course updated 31 days ago must not be tagged new")
	}
}

func TestPageBeyondLastKeepsTrueTotals(t *testing.T) {
	store := &fakeCatalogStore{items: []domain.CourseSummary{}, total: 12}
	svc := CatalogService{Store: store, Categories: fixedScope{}, Tags: TagRules{Now: fixedNow}}

	page, err := svc.ListCourses(context.Background(), domain.ListFilters{Page: 9, PageSize: 10})
	if err != nil {
		t.Fatalf("ListCourses error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(page.Items))
	}
	if page.Pagination.Total != 12 || page.Pagination.TotalPages != 2 {
		t.Fatalf("totals must survive an out-of-range page: %+v", page.Pagination)
	}
}

func TestStoreFailureSurfaces(t *testing.T) {
	store := &fakeCatalogStore{countErr: errors.New("connection reset")}
	svc := CatalogService{Store: store, Categories: fixedScope{}, Tags: TagRules{Now: fixedNow}}

	_, err := svc.ListCourses(context.Background(), domain.ListFilters{Page: 1, PageSize: 10})
	if err == nil {
		t.Fatalf("store failure must not produce an empty catalog")
	}
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestScopeFailureSurfaces(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := CatalogService{
		Store:      store,
		Categories: fixedScope{err: domain.InternalError{Msg: "category scope lookup failed"}},
		Tags:       TagRules{Now: fixedNow},
	}

	_, err := svc.ListCourses(context.Background(), domain.ListFilters{CategoryID: 4, Page: 1, PageSize: 10})
	if err == nil {
		t.Fatalf("expected error")
	}
	if store.findCalls != 0 || store.countCalls != 0 {
		t.Fatalf("store must not be queried when scope expansion fails")
	}
}
