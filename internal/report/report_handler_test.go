package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/allwinajith/elms/internal/report"
	reporterrors "github.com/allwinajith/elms/internal/report/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeReportService struct {
	FetchFn func(ctx context.Context, f report.ReportFilter) ([]report.LeaveReportResponse, error)
	ListFn  func(ctx context.Context, status string) ([]report.LeaveReportResponse, error)
}

func (f *fakeReportService) FetchLeaveReports(ctx context.Context, filter report.ReportFilter) ([]report.LeaveReportResponse, error) {
	return f.FetchFn(ctx, filter)
}
func (f *fakeReportService) ListForAdmin(ctx context.Context, status string) ([]report.LeaveReportResponse, error) {
	return f.ListFn(ctx, status)
}

func setupRouter(svc report.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := report.NewHandler(svc)
	r.GET("/leave/admin/leaves", h.ListForAdmin)
	r.GET("/leave/admin/reports/leaves", h.GetLeaveReports)
	return r
}

func sampleRows() []report.LeaveReportResponse {
	remarks := "ok"
	return []report.LeaveReportResponse{
		{ID: "l1", EmpID: "EMP-1", EmployeeName: "Asha", LeaveType: "Sick", StartDate: "2025-03-01", EndDate: "2025-03-10", TotalDays: 10, Status: "approved", AdminRemarks: &remarks},
		{ID: "l2", EmpID: "EMP-2", EmployeeName: "Ravi", LeaveType: "Annual", StartDate: "2025-02-01", EndDate: "2025-02-01", TotalDays: 1, Status: "pending"},
	}
}

func TestReportHandler_GetLeaveReports(t *testing.T) {
	t.Run("json with filters from query", func(t *testing.T) {
		svc := &fakeReportService{
			FetchFn: func(ctx context.Context, f report.ReportFilter) ([]report.LeaveReportResponse, error) {
				assert.Equal(t, "approved", f.Status)
				assert.Equal(t, 2025, f.Year)
				return sampleRows(), nil
			},
		}

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave/admin/reports/leaves?status=approved&year=2025", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_name":"Asha"`)
	})

	t.Run("xlsx export", func(t *testing.T) {
		svc := &fakeReportService{
			FetchFn: func(ctx context.Context, f report.ReportFilter) ([]report.LeaveReportResponse, error) {
				return sampleRows(), nil
			},
		}

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave/admin/reports/leaves?format=xlsx", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "leave-report-")

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Leave Report")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Request ID", rows[0][0])
		assert.Equal(t, "Asha", rows[1][2])
		assert.Equal(t, "ok", rows[1][9])
	})

	t.Run("unknown format", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(&fakeReportService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave/admin/reports/leaves?format=pdf", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non numeric year", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(&fakeReportService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave/admin/reports/leaves?year=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), reporterrors.ErrInvalidYear.Message)
	})
}

func manyRows(n int) []report.LeaveReportResponse {
	rows := make([]report.LeaveReportResponse, n)
	for i := range rows {
		rows[i] = report.LeaveReportResponse{ID: fmt.Sprintf("l%d", i+1), Status: "pending"}
	}
	return rows
}

func TestReportHandler_ListForAdmin_AllRowsWithoutPaging(t *testing.T) {
	svc := &fakeReportService{
		ListFn: func(ctx context.Context, status string) ([]report.LeaveReportResponse, error) {
			return manyRows(25), nil
		},
	}

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave/admin/leaves", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []report.LeaveReportResponse `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Data, 25)
	assert.Equal(t, 25, env.Meta.Total)
}

func TestReportHandler_ListForAdmin_HugePageIsEmpty(t *testing.T) {
	svc := &fakeReportService{
		ListFn: func(ctx context.Context, status string) ([]report.LeaveReportResponse, error) {
			return manyRows(5), nil
		},
	}

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave/admin/leaves?page=4611686018427387904&page_size=4", nil))
	})

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []report.LeaveReportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Empty(t, env.Data)
}

func TestReportHandler_ListForAdmin(t *testing.T) {
	svc := &fakeReportService{
		ListFn: func(ctx context.Context, status string) ([]report.LeaveReportResponse, error) {
			assert.Equal(t, "pending", status)
			return sampleRows(), nil
		},
	}

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave/admin/leaves?status=pending&page=2&page_size=1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []report.LeaveReportResponse `json:"data"`
		Meta struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
			Page       int `json:"page"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "l2", env.Data[0].ID)
	assert.Equal(t, 2, env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.Equal(t, 2, env.Meta.Page)
}
