package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/categories
// The menu is fail-soft: a broken category store yields an empty list.
func (h Handler) CategoryMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Categories.Menu(c.Request.Context())})
}
