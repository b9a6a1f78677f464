package rbac_test

import (
	"testing"

	"github.com/allwinajith/elms/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) rbac.Service {
	t.Helper()
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)
	return rbac.NewService(e)
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name     string
		req      rbac.EnforceRequest
		expected bool
	}{
		{"admin decides leave", rbac.EnforceRequest{Role: rbac.RoleAdmin, Resource: rbac.ResourceLeaveRequest, Action: rbac.ActionDecide}, true},
		{"employee cannot decide leave", rbac.EnforceRequest{Role: rbac.RoleEmployee, Resource: rbac.ResourceLeaveRequest, Action: rbac.ActionDecide}, false},
		{"employee submits leave", rbac.EnforceRequest{Role: rbac.RoleEmployee, Resource: rbac.ResourceLeaveRequest, Action: rbac.ActionCreate}, true},
		{"admin does not submit leave", rbac.EnforceRequest{Role: rbac.RoleAdmin, Resource: rbac.ResourceLeaveRequest, Action: rbac.ActionCreate}, false},
		{"employee lists leave types", rbac.EnforceRequest{Role: rbac.RoleEmployee, Resource: rbac.ResourceLeaveType, Action: rbac.ActionRead}, true},
		{"employee cannot edit leave types", rbac.EnforceRequest{Role: rbac.RoleEmployee, Resource: rbac.ResourceLeaveType, Action: rbac.ActionUpdate}, false},
		{"employee cannot read reports", rbac.EnforceRequest{Role: rbac.RoleEmployee, Resource: rbac.ResourceReport, Action: rbac.ActionRead}, false},
		{"empty role", rbac.EnforceRequest{Resource: rbac.ResourceLeaveType, Action: rbac.ActionRead}, false},
		{"unknown role", rbac.EnforceRequest{Role: "MANAGER", Resource: rbac.ResourceLeaveType, Action: rbac.ActionRead}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, allowed)
		})
	}
}
