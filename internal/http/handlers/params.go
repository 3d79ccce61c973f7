package handlers

import (
	"strconv"
	"strings"

	"academy/internal/domain"

	"github.com/gin-gonic/gin"
)

// queryInt parses a positive integer query value; anything else is 0 so
// downstream coercion picks the default. Pagination input is never fatal.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func queryInt64(c *gin.Context, key string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// paramID parses a path id, yielding a validation error for garbage.
func paramID(c *gin.Context, name string) (int64, error) {
	n, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ValidationError{Field: name, Msg: "must be a positive integer"}
	}
	return n, nil
}

// queryStatus parses the admin status filter; anything unrecognized means
// no restriction.
func queryStatus(c *gin.Context) domain.CourseStatus {
	switch domain.CourseStatus(strings.TrimSpace(c.Query("status"))) {
	case domain.StatusActive:
		return domain.StatusActive
	case domain.StatusDisabled:
		return domain.StatusDisabled
	default:
		return domain.StatusAny
	}
}
