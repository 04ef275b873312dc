package domain

import "github.com/google/uuid"

type Role string

const (
	RoleEmployee     Role = "EMPLOYEE"
	RoleManager      Role = "MANAGER"
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleFinanceAdmin Role = "FINANCE_ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleSuperAdmin, RoleFinanceAdmin:
		return true
	}
	return false
}

// Caller is the already-verified identity of whoever issued the request.
// It is passed explicitly into every service operation.
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

func (c Caller) IsZero() bool {
	return c.UserID == uuid.Nil
}

func (c Caller) Owns(userID uuid.UUID) bool {
	return c.UserID != uuid.Nil && c.UserID == userID
}

// IsElevated reports roles that may act on other users' time records.
func (c Caller) IsElevated() bool {
	switch c.Role {
	case RoleManager, RoleSuperAdmin, RoleFinanceAdmin:
		return true
	}
	return false
}

// CanReview reports roles allowed to view other users' timesheets.
func (c Caller) CanReview() bool {
	return c.Role == RoleManager || c.Role == RoleSuperAdmin
}
