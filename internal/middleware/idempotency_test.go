package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/allwinajith/elms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/leave:emp-1:key-1"
	stored := `{"status":201,"body":{"ok":true}}`

	setup := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
		rdb, mock := redismock.NewClientMock()
		calls := 0

		r := newEngine()
		r.POST("/leave", func(c *gin.Context) {
			c.Set("employee_id", "emp-1")
			c.Next()
		}, middleware.Idempotency(rdb), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})
		return r, mock, &calls
	}

	send := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request runs handler and stores result", func(t *testing.T) {
		r, mock, calls := setup(t)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(stored), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := send(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed", func(t *testing.T) {
		r, mock, calls := setup(t)

		mock.ExpectGet(cacheKey).SetVal(stored)

		w := send(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, *calls)
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		r, mock, calls := setup(t)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := send(r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *calls)
	})

	t.Run("without key the handler always runs", func(t *testing.T) {
		r, _, calls := setup(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leave", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
	})
}
