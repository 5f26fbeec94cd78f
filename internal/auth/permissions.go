package auth

import (
	"errors"

	"jobboard_backend/internal/models"
)

// Capability map: one place for the role/action matrix instead of inline
// role checks scattered through handlers. Ownership gates stay in the
// services next to the data they guard.
var permissions = map[models.UserRole][]string{
	models.UserRoleCandidate: {
		"applications:create",
		"applications:read:own",
		"applications:withdraw",
		"reviews:create",
		"reviews:read:own",
		"jobs:save",
		"companies:follow",
		"profile:write:own",
	},
	models.UserRoleEmployer: {
		"jobs:create",
		"jobs:read:own",
		"jobs:write:own",
		"jobs:delete:own",
		"applications:read:company",
		"applications:update-status",
		"profile:write:own",
	},
	models.UserRoleAdmin: {
		"users:read",
		"users:write",
		"users:delete",
		"jobs:read",
		"jobs:write",
		"jobs:delete",
		"audit-logs:read",
		"profile:write:own",
	},
}

// HasPermission reports whether the role grants the action.
func HasPermission(role models.UserRole, action string) bool {
	for _, p := range permissions[role] {
		if p == action {
			return true
		}
	}
	return false
}

// ValidateRole checks that the role is one users may register as. Admin is
// excluded: admin accounts exist only through seeding.
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleCandidate, models.UserRoleEmployer:
		return nil
	default:
		return errors.New("invalid role")
	}
}
