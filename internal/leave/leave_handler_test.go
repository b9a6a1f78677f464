package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/allwinajith/elms/internal/auth"
	"github.com/allwinajith/elms/internal/leave"
	leaveerrors "github.com/allwinajith/elms/internal/leave/errors"
	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type fakeLeaveService struct {
	SubmitFn  func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.SubmitLeaveResponse, error)
	ListOwnFn func(ctx context.Context, employeeID, status string) ([]leave.EmployeeLeaveResponse, error)
	CancelFn  func(ctx context.Context, leaveID, employeeID string) error
	DecideFn  func(ctx context.Context, leaveID, adminID string, req leave.DecideLeaveRequest) (leave.DecisionResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.SubmitLeaveResponse, error) {
	return f.SubmitFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) ListOwn(ctx context.Context, employeeID, status string) ([]leave.EmployeeLeaveResponse, error) {
	return f.ListOwnFn(ctx, employeeID, status)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, leaveID, employeeID string) error {
	return f.CancelFn(ctx, leaveID, employeeID)
}
func (f *fakeLeaveService) Decide(ctx context.Context, leaveID, adminID string, req leave.DecideLeaveRequest) (leave.DecisionResponse, error) {
	return f.DecideFn(ctx, leaveID, adminID, req)
}

type testServer struct {
	router *gin.Engine
	tokens *auth.TokenManager
}

func setupServer(t *testing.T, svc leave.Service) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	enforcer, err := rbac.NewEnforcer()
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	r := gin.New()
	group := r.Group("/api/leave", middleware.AuthMiddleware(tokens))
	leave.RegisterRoutes(group, leave.NewHandler(svc), rbac.NewService(enforcer), nil)

	return &testServer{router: r, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env apiEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (s *testServer) employeeToken(t *testing.T, employeeID string) string {
	t.Helper()
	tok, err := s.tokens.Issue("", employeeID, rbac.RoleEmployee)
	require.NoError(t, err)
	return tok
}

func (s *testServer) adminToken(t *testing.T, adminID string) string {
	t.Helper()
	tok, err := s.tokens.Issue(adminID, "", rbac.RoleAdmin)
	require.NoError(t, err)
	return tok
}

func TestLeaveHandler_Submit(t *testing.T) {
	empID := uuid.NewString()
	body := map[string]string{
		"leave_type_id": uuid.NewString(),
		"start_date":    "2025-03-01",
		"end_date":      "2025-03-10",
		"reason":        "flu",
		"employee_id":   uuid.NewString(),
	}

	t.Run("employee id comes from the token", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.SubmitLeaveResponse, error) {
				assert.Equal(t, empID, employeeID)
				assert.Equal(t, "flu", req.Reason)
				return leave.SubmitLeaveResponse{RequestID: "r1", TotalDays: 10}, nil
			},
		}
		srv := setupServer(t, svc)

		w, env := srv.do(t, http.MethodPost, "/api/leave/employee/leaves", srv.employeeToken(t, empID), body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"request_id":"r1","total_days":10}`, string(env.Data))
	})

	t.Run("missing fields", func(t *testing.T) {
		srv := setupServer(t, &fakeLeaveService{})

		w, env := srv.do(t, http.MethodPost, "/api/leave/employee/leaves", srv.employeeToken(t, empID), map[string]string{"reason": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("quota exceeded carries remaining days", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.SubmitLeaveResponse, error) {
				return leave.SubmitLeaveResponse{}, leaveerrors.ErrQuotaExceeded.
					WithMessage("Leave quota exceeded. Available: 1 days").
					WithDetails(map[string]any{"remaining_days": 1})
			},
		}
		srv := setupServer(t, svc)

		w, env := srv.do(t, http.MethodPost, "/api/leave/employee/leaves", srv.employeeToken(t, empID), body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Leave quota exceeded. Available: 1 days", env.Message)
		require.NotNil(t, env.Error)
		assert.Equal(t, "QUOTA_EXCEEDED", env.Error.Code)
		assert.EqualValues(t, 1, env.Error.Details["remaining_days"])
	})

	t.Run("admins cannot submit", func(t *testing.T) {
		srv := setupServer(t, &fakeLeaveService{})

		w, _ := srv.do(t, http.MethodPost, "/api/leave/employee/leaves", srv.adminToken(t, uuid.NewString()), body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		srv := setupServer(t, &fakeLeaveService{})

		w, _ := srv.do(t, http.MethodPost, "/api/leave/employee/leaves", "", body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_ListOwn(t *testing.T) {
	empID := uuid.NewString()
	svc := &fakeLeaveService{
		ListOwnFn: func(ctx context.Context, employeeID, status string) ([]leave.EmployeeLeaveResponse, error) {
			assert.Equal(t, empID, employeeID)
			assert.Equal(t, "approved", status)
			return []leave.EmployeeLeaveResponse{{ID: "l1", Status: "approved"}}, nil
		},
	}
	srv := setupServer(t, svc)

	w, env := srv.do(t, http.MethodGet, "/api/leave/employee/leaves/?status=approved", srv.employeeToken(t, empID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"id":"l1"`)
}

func TestLeaveHandler_Cancel(t *testing.T) {
	empID := uuid.NewString()
	leaveID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			CancelFn: func(ctx context.Context, id, employeeID string) error {
				assert.Equal(t, leaveID, id)
				assert.Equal(t, empID, employeeID)
				return nil
			},
		}
		srv := setupServer(t, svc)

		w, env := srv.do(t, http.MethodDelete, "/api/leave/pendingrqst/"+leaveID, srv.employeeToken(t, empID), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Leave request cancelled successfully", env.Message)
	})

	t.Run("not pending", func(t *testing.T) {
		svc := &fakeLeaveService{
			CancelFn: func(ctx context.Context, id, employeeID string) error {
				return leaveerrors.ErrNotPending
			},
		}
		srv := setupServer(t, svc)

		w, env := srv.do(t, http.MethodDelete, "/api/leave/pendingrqst/"+leaveID, srv.employeeToken(t, empID), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}

func TestLeaveHandler_Decide(t *testing.T) {
	adminID := uuid.NewString()
	leaveID := uuid.NewString()

	t.Run("approve", func(t *testing.T) {
		svc := &fakeLeaveService{
			DecideFn: func(ctx context.Context, id, decidedBy string, req leave.DecideLeaveRequest) (leave.DecisionResponse, error) {
				assert.Equal(t, leaveID, id)
				assert.Equal(t, adminID, decidedBy)
				return leave.DecisionResponse{ID: id, Status: req.Status}, nil
			},
		}
		srv := setupServer(t, svc)

		w, env := srv.do(t, http.MethodPut, "/api/leave/admin/leaves/"+leaveID, srv.adminToken(t, adminID),
			map[string]string{"status": "approved", "admin_remarks": "ok"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Leave has been approved", env.Message)
	})

	t.Run("employees cannot decide", func(t *testing.T) {
		srv := setupServer(t, &fakeLeaveService{})

		w, env := srv.do(t, http.MethodPut, "/api/leave/admin/leaves/"+leaveID, srv.employeeToken(t, uuid.NewString()),
			map[string]string{"status": "approved"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "leave_request:decide", env.Error.Details["required"])
	})

	t.Run("already processed", func(t *testing.T) {
		svc := &fakeLeaveService{
			DecideFn: func(ctx context.Context, id, decidedBy string, req leave.DecideLeaveRequest) (leave.DecisionResponse, error) {
				return leave.DecisionResponse{}, leaveerrors.ErrAlreadyDecided
			},
		}
		srv := setupServer(t, svc)

		w, _ := srv.do(t, http.MethodPut, "/api/leave/admin/leaves/"+leaveID, srv.adminToken(t, adminID),
			map[string]string{"status": "approved"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
