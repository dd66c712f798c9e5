// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the permission label carried by a user.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Overlaps reports whether any of the given role names is present.
func (rs Roles) Overlaps(names []string) bool {
	for _, name := range names {
		if rs.Contains(Role(name)) {
			return true
		}
	}

	return false
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
