package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// ParsePagination reads page/limit query params with sane bounds.
func ParsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewPagination(page, limit int, totalCount int64) Pagination {
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// RespondPaginated writes the list envelope used by all admin listings.
func RespondPaginated(c *gin.Context, code int, message string, data interface{}, p Pagination) {
	c.JSON(code, gin.H{
		"status":     true,
		"message":    message,
		"data":       data,
		"pagination": p,
	})
}
