package auth

import "github.com/kmori/techtrends/models"

// adminGroup is the provider group whose members get the admin role.
const adminGroup = "admin"

// RequireAuth reports whether the result represents a verified user. It is
// the guard used before any access to result.User.
func RequireAuth(result models.AuthResult) bool {
	return result.Authenticated && result.User != nil
}

// RequireAdmin reports whether the result represents a verified user holding
// the admin role.
func RequireAdmin(result models.AuthResult) bool {
	return RequireAuth(result) && result.User.Role == models.RoleAdmin
}

// DeriveRole computes the role from group memberships: admin iff the admin
// group is present. The role is recomputed on every request and never
// persisted, so it cannot go stale.
func DeriveRole(groups []string) models.Role {
	for _, g := range groups {
		if g == adminGroup {
			return models.RoleAdmin
		}
	}
	return models.RoleUser
}
