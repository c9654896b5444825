package authorization

// UserRole is the closed set of helpdesk profiles.
type UserRole string

const (
	RoleAdmin   UserRole = "Administrador"
	RoleSupport UserRole = "Suporte"
	RoleUser    UserRole = "Usuário"
)

var allRoles = []UserRole{RoleAdmin, RoleSupport, RoleUser}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role can work tickets and be assigned.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleSupport
}

func (r UserRole) IsValid() bool {
	for _, role := range allRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseUserRole maps unknown strings to RoleUser.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// Roles returns every role in display order.
func Roles() []UserRole {
	out := make([]UserRole, len(allRoles))
	copy(out, allRoles)
	return out
}
