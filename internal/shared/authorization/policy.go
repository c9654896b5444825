package authorization

// Permission names a capability checked by Allowed.
type Permission string

const (
	PermManageUsers   Permission = "users:manage"
	PermAssignTickets Permission = "tickets:assign"
	PermWriteAssets   Permission = "assets:write"
	PermDeleteAssets  Permission = "assets:delete"
	PermWriteStock    Permission = "stock:write"
	PermDeleteStock   Permission = "stock:delete"
)

// policy is the single source of role grants. Anything absent is denied.
var policy = map[UserRole][]Permission{
	RoleAdmin: {
		PermManageUsers,
		PermAssignTickets,
		PermWriteAssets,
		PermDeleteAssets,
		PermWriteStock,
		PermDeleteStock,
	},
	RoleSupport: {
		PermAssignTickets,
		PermWriteAssets,
		PermWriteStock,
	},
}

// Allowed reports whether role holds perm.
func Allowed(role UserRole, perm Permission) bool {
	for _, p := range policy[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// Grant is one (role, permission) pair of the static policy.
type Grant struct {
	Role       UserRole
	Permission Permission
}

// Grants flattens the static policy, used to seed external enforcers.
func Grants() []Grant {
	var out []Grant
	for _, role := range allRoles {
		for _, p := range policy[role] {
			out = append(out, Grant{Role: role, Permission: p})
		}
	}
	return out
}

// Checker decides permissions. The casbin enforcer and StaticChecker both
// satisfy it.
type Checker interface {
	Allowed(role UserRole, perm Permission) bool
}

// StaticChecker evaluates the in-code policy.
type StaticChecker struct{}

func (StaticChecker) Allowed(role UserRole, perm Permission) bool {
	return Allowed(role, perm)
}
