package handlers

import (
	"database/sql"

	"academy/internal/services"
)

// Site paging policy: search results render 6 per page, category/list
// pages 10, the admin table 12.
const (
	searchPageSize = 6
	listPageSize   = 10
	adminPageSize  = 12
)

// Handler bundles the injected dependencies for all route handlers; no
// handler reaches for globals.
type Handler struct {
	Catalog    services.CatalogService
	Courses    services.CourseService
	Categories services.CategoryService
	DB         *sql.DB
}
