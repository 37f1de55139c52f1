package domain

// Role is the coarse authorization level attached to an identity.
type Role string

// Known roles. Anything else is treated as a plain user.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the externally-managed current user, consumed to stamp
// ownership on created trips. The pipeline neither issues nor validates
// credentials; an upstream auth layer supplies these values.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the identity carries the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
