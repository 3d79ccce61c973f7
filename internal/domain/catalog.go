package domain

import "strings"

// SortMode orders catalog results. Relevance degrades to newest: the
// matcher has no per-strategy weights, so there is no score to rank by.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortRating    SortMode = "rating"
	SortPopular   SortMode = "popular"
)

// ParseSortMode maps caller input to a SortMode, falling back to newest
// for anything unrecognized. Sort is a UX nicety, not worth a 400.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortRelevance:
		return SortRelevance
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortRating:
		return SortRating
	case SortPopular:
		return SortPopular
	default:
		return SortNewest
	}
}

// CourseStatus filters on the disabled flag. Empty means no restriction;
// public listings are expected to force StatusActive at the call site.
type CourseStatus string

const (
	StatusAny      CourseStatus = ""
	StatusActive   CourseStatus = "active"
	StatusDisabled CourseStatus = "disabled"
)

// SearchRequest is the external search shape: free text plus filters.
type SearchRequest struct {
	Query      string   `json:"query"`
	CategoryID int64    `json:"categoryId"`
	Sort       SortMode `json:"sort"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
}

// ListFilters is the external non-text browsing shape.
type ListFilters struct {
	CategoryID int64        `json:"categoryId"`
	Status     CourseStatus `json:"status"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
}

// CatalogQuery is the fully resolved query plan handed to the repository:
// category scope already expanded, pagination already coerced. Every
// filter/sort combination is enumerable from this one struct instead of
// emerging from conditional builder chains.
type CatalogQuery struct {
	CategoryIDs []int64
	Status      CourseStatus
	Text        string
	Sort        SortMode
	Page        int
	PageSize    int
}

// Offset returns the 0-based row offset for the current page.
func (q CatalogQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Pagination carries paging params and totals for a result page.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes totals from a filtered count.
func NewPagination(page, pageSize, total int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// ResultPage is the uniform page shape returned to route handlers.
type ResultPage struct {
	Items      []CourseSummary `json:"items"`
	Pagination Pagination      `json:"pagination"`
}
