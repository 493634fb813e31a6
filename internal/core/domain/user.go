package domain

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AuthenticatedUser is the immutable snapshot of the logged-in admin returned
// by the catalog backend. It is replaced wholesale on every successful
// validation, never mutated in place.
type AuthenticatedUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user may access the management surface.
func (u *AuthenticatedUser) IsAdmin() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleSuperAdmin)
}
