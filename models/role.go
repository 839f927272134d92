package models

// Role is the access level assigned to a user account. Roles form a strict
// hierarchy: admin > finance_manager > department_head > viewer. A role
// inherits every permission of the roles below it.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleFinanceManager Role = "finance_manager"
	RoleDepartmentHead Role = "department_head"
	RoleViewer         Role = "viewer"
)

// Permission names a single resource-action pair checked by the HTTP layer
// before a request reaches the service layer.
type Permission string

const (
	PermCreateUser Permission = "create_user"
	PermReadUser   Permission = "read_user"
	PermUpdateUser Permission = "update_user"
	PermDeleteUser Permission = "delete_user"

	PermCreateDepartment Permission = "create_department"
	PermReadDepartment   Permission = "read_department"
	PermUpdateDepartment Permission = "update_department"
	PermDeleteDepartment Permission = "delete_department"

	PermCreateBudget Permission = "create_budget"
	PermReadBudget   Permission = "read_budget"
	PermUpdateBudget Permission = "update_budget"
	PermDeleteBudget Permission = "delete_budget"

	PermCreateTransaction Permission = "create_transaction"
	PermReadTransaction   Permission = "read_transaction"
	PermUpdateTransaction Permission = "update_transaction"
	PermDeleteTransaction Permission = "delete_transaction"

	PermReadReport Permission = "read_report"

	PermReadAudit   Permission = "read_audit"
	PermManageAudit Permission = "manage_audit"
)

// roleHierarchy lists, for every role, the roles whose permissions it inherits.
var roleHierarchy = map[Role][]Role{
	RoleAdmin:          {RoleFinanceManager, RoleDepartmentHead, RoleViewer},
	RoleFinanceManager: {RoleDepartmentHead, RoleViewer},
	RoleDepartmentHead: {RoleViewer},
	RoleViewer:         {},
}

// rolePermissions holds the permissions granted directly to each role,
// before hierarchy inheritance is applied.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermCreateUser, PermUpdateUser, PermDeleteUser,
		PermDeleteDepartment,
		PermDeleteBudget,
		PermDeleteTransaction,
		PermManageAudit, PermReadAudit,
	},
	RoleFinanceManager: {
		PermCreateDepartment, PermUpdateDepartment, PermDeleteDepartment,
		PermDeleteBudget,
		PermDeleteTransaction,
		PermReadAudit,
	},
	RoleDepartmentHead: {
		PermCreateBudget, PermUpdateBudget,
		PermCreateTransaction, PermUpdateTransaction,
	},
	RoleViewer: {
		PermReadUser,
		PermReadDepartment,
		PermReadBudget,
		PermReadTransaction,
		PermReadReport,
	},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permissions returns the effective permission set of the role, including
// permissions inherited through the role hierarchy.
func (r Role) Permissions() map[Permission]struct{} {
	effective := make(map[Permission]struct{})
	for _, p := range rolePermissions[r] {
		effective[p] = struct{}{}
	}
	for _, inherited := range roleHierarchy[r] {
		for _, p := range rolePermissions[inherited] {
			effective[p] = struct{}{}
		}
	}
	return effective
}

// Can reports whether the role holds the given permission, either directly
// or through hierarchy inheritance.
func (r Role) Can(p Permission) bool {
	_, ok := r.Permissions()[p]
	return ok
}

// CanModifyUser reports whether a user with this role may modify the target
// user's account. Admins modify anyone; everyone else only themselves.
func (r Role) CanModifyUser(actorID, targetID string) bool {
	if r == RoleAdmin {
		return true
	}
	return actorID == targetID
}
