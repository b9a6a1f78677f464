package rbac

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

const (
	ResourceAdmin        = "admin"
	ResourceLeaveType    = "leave_type"
	ResourceLeaveRequest = "leave_request"
	ResourceBalance      = "balance"
	ResourceReport       = "report"
)

const (
	ActionRead    = "read"
	ActionReadAll = "read_all"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionCancel  = "cancel"
	ActionDecide  = "decide"
	ActionInit    = "init"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// defaultPolicies is the whole permission table; roles come from the token.
var defaultPolicies = [][]string{
	{RoleAdmin, ResourceAdmin, ActionRead},
	{RoleAdmin, ResourceAdmin, ActionCreate},
	{RoleAdmin, ResourceAdmin, ActionUpdate},

	{RoleAdmin, ResourceLeaveType, ActionRead},
	{RoleAdmin, ResourceLeaveType, ActionCreate},
	{RoleAdmin, ResourceLeaveType, ActionUpdate},
	{RoleAdmin, ResourceLeaveType, ActionDelete},
	{RoleEmployee, ResourceLeaveType, ActionRead},

	{RoleAdmin, ResourceLeaveRequest, ActionReadAll},
	{RoleAdmin, ResourceLeaveRequest, ActionDecide},
	{RoleEmployee, ResourceLeaveRequest, ActionCreate},
	{RoleEmployee, ResourceLeaveRequest, ActionRead},
	{RoleEmployee, ResourceLeaveRequest, ActionCancel},

	{RoleAdmin, ResourceBalance, ActionRead},
	{RoleAdmin, ResourceBalance, ActionInit},
	{RoleEmployee, ResourceBalance, ActionRead},

	{RoleAdmin, ResourceReport, ActionRead},
}
