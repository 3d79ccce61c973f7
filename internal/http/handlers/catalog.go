package handlers

import (
	"net/http"

	"academy/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /api/courses?category=&page=&pageSize=
// Public browsing; disabled courses are always filtered out here.
func (h Handler) ListCourses(c *gin.Context) {
	f := domain.ListFilters{
		CategoryID: queryInt64(c, "category"),
		Status:     domain.StatusActive,
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "pageSize"),
	}
	if f.PageSize == 0 {
		f.PageSize = listPageSize
	}

	page, err := h.Catalog.ListCourses(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/courses/search?q=&category=&sort=&page=&pageSize=
func (h Handler) SearchCourses(c *gin.Context) {
	req := domain.SearchRequest{
		Query:      c.Query("q"),
		CategoryID: queryInt64(c, "category"),
		Sort:       domain.ParseSortMode(c.Query("sort")),
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "pageSize"),
	}
	if req.PageSize == 0 {
		req.PageSize = searchPageSize
	}

	page, err := h.Catalog.SearchCourses(c.Request.Context(), req, domain.StatusActive)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/admin/courses?q=&category=&status=&sort=&page=&pageSize=
// The admin table exposes the status filter; absent means everything.
func (h Handler) AdminCourses(c *gin.Context) {
	req := domain.SearchRequest{
		Query:      c.Query("q"),
		CategoryID: queryInt64(c, "category"),
		Sort:       domain.ParseSortMode(c.Query("sort")),
		Page:       queryInt(c, "page"),
		PageSize:   queryInt(c, "pageSize"),
	}
	if req.PageSize == 0 {
		req.PageSize = adminPageSize
	}

	page, err := h.Catalog.SearchCourses(c.Request.Context(), req, queryStatus(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
