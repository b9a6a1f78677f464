package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthBody struct {
	Success bool              `json:"success"`
	Data    map[string]string `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func callHealth(t *testing.T, h gin.HandlerFunc) (int, healthBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var body healthBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthHandler(t *testing.T) {
	t.Run("database and redis up", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		rdb, rmock := redismock.NewClientMock()

		mock.ExpectPing()
		rmock.ExpectPing().SetVal("PONG")

		code, body := callHealth(t, healthHandler(db, rdb))

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, body.Success)
		assert.Equal(t, "ok", body.Data["database"])
		assert.Equal(t, "ok", body.Data["redis"])
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("redis not configured", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing()

		code, body := callHealth(t, healthHandler(db, nil))

		assert.Equal(t, http.StatusOK, code)
		assert.NotContains(t, body.Data, "redis")
	})

	t.Run("database down", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		code, body := callHealth(t, healthHandler(db, nil))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
		assert.Equal(t, "connection refused", body.Error.Details["database"])
	})
}
