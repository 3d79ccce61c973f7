package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/courses/:id
func (h Handler) GetCourse(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	detail, err := h.Courses.GetCourse(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/courses/:id/reviews?page=&pageSize=
func (h Handler) CourseReviews(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	reviews, pagination, err := h.Courses.CourseReviews(c.Request.Context(), id, queryInt(c, "page"), queryInt(c, "pageSize"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": reviews, "pagination": pagination})
}

// GET /api/courses/top-viewed
func (h Handler) TopViewedCourses(c *gin.Context) {
	items, err := h.Courses.TopViewed(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /api/courses/top-new
func (h Handler) TopNewestCourses(c *gin.Context) {
	items, err := h.Courses.TopNewest(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
