package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/allwinajith/elms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)

	assert.Equal(t, int64(21), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("second page", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&page_size=2", nil)

		got, meta := response.Paginate(c, items)

		assert.Equal(t, []int{3, 4}, got)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=9&page_size=2", nil)

		got, _ := response.Paginate(c, items)

		assert.Empty(t, got)
	})

	t.Run("invalid params fall back to defaults", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=abc&page_size=-1", nil)

		got, meta := response.Paginate(c, items)

		assert.Len(t, got, 5)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 10, meta.PageSize)
	})
	t.Run("huge page does not overflow", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=4611686018427387904&page_size=4", nil)

		var got []int
		assert.NotPanics(t, func() { got, _ = response.Paginate(c, items) })
		assert.Empty(t, got)
	})

	t.Run("page size is capped", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page_size=100000", nil)

		_, meta := response.Paginate(c, items)

		assert.Equal(t, 100, meta.PageSize)
	})

	t.Run("last partial page", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&page_size=2", nil)

		got, _ := response.Paginate(c, items)

		assert.Equal(t, []int{5}, got)
	})
}

func TestPaginateIfRequested(t *testing.T) {
	items := make([]int, 25)

	t.Run("no params returns everything", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		got, meta := response.PaginateIfRequested(c, items)

		assert.Len(t, got, 25)
		assert.Equal(t, int64(25), meta.Total)
	})

	t.Run("page_size alone paginates", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page_size=10", nil)

		got, meta := response.PaginateIfRequested(c, items)

		assert.Len(t, got, 10)
		assert.Equal(t, 3, meta.TotalPages)
	})
}
