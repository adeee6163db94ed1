package valueobjects

import "fmt"

type Role string

const (
	RoleDispatcher Role = "dispatcher"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleOwner      Role = "owner"
)

var validRoles = map[Role]bool{
	RoleDispatcher: true,
	RoleManager:    true,
	RoleAdmin:      true,
	RoleOwner:      true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanReview reports whether the role is allowed to complete spot-check reviews.
// Spot checks are a manager-level audit.
func (r Role) CanReview() bool {
	return r == RoleManager || r == RoleAdmin || r == RoleOwner
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
