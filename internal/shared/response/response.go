package response

import (
	"math"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// Logika pembulatan ke atas: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

type ApiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    any             `json:"data,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
	Error   any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func Message(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Success: false,
		Message: message,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Paginate slices an in-memory list using page/page_size query params.
// page_size is capped at 100.
func Paginate[T any](c *gin.Context, items []T) ([]T, PaginationMeta) {
	page := queryInt(c, "page", 1, math.MaxInt)
	pageSize := queryInt(c, "page_size", defaultPageSize, maxPageSize)

	total := int64(len(items))
	start, end := pageBounds(page, pageSize, len(items))

	return items[start:end], NewPaginationMeta(total, page, pageSize)
}

// PaginateIfRequested returns every item unless the client sent page or
// page_size, in which case it behaves like Paginate.
func PaginateIfRequested[T any](c *gin.Context, items []T) ([]T, PaginationMeta) {
	if c.Query("page") == "" && c.Query("page_size") == "" {
		return items, NewPaginationMeta(int64(len(items)), 1, len(items))
	}
	return Paginate(c, items)
}

// pageBounds clamps the slice window to [0, n] without multiplying past
// the int range for very large page numbers.
func pageBounds(page, pageSize, n int) (int, int) {
	if page-1 >= (n+pageSize-1)/pageSize+1 {
		return n, n
	}
	start := (page - 1) * pageSize
	if start > n {
		start = n
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}
