// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the membership tier of a registered user. Admin is only carried by tokens.
type Role string

const (
	// RoleBasic is the free tier.
	RoleBasic Role = "Basic"
	// RoleVIP is the entry paid tier.
	RoleVIP     Role = "VIP"
	RolePremium Role = "Premium"
	RoleGold    Role = "Gold"
	// RolePlatinum is the highest paid tier.
	RolePlatinum Role = "Platinum"
	// RoleAdmin gates the back-office routes.
	RoleAdmin Role = "admin"
)

// affiliateRoles is the fixed allow-list of tiers that may hold an affiliate code.
var affiliateRoles = Roles{RoleVIP, RolePremium, RoleGold, RolePlatinum}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBasic, RoleVIP, RolePremium, RoleGold, RolePlatinum, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanBeAffiliate reports whether the role may hold a non-empty affiliate code.
// The comparison is exact, so "vip" and "" are not eligible.
func CanBeAffiliate(role string) bool {
	return affiliateRoles.Contains(Role(role))
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
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
