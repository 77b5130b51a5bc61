package auth

// Permission names a gated capability. Using a typed string keeps the
// role table from degrading into ad-hoc string lists.
type Permission string

const (
	// PermissionAll is the admin wildcard matching every permission.
	PermissionAll Permission = "all"

	PermissionViewWholesalePricing Permission = "view_wholesale_pricing"
	PermissionViewRetailPricing    Permission = "view_retail_pricing"
	PermissionCreateQuotes         Permission = "create_quotes"
	PermissionManageCustomers      Permission = "manage_customers"
	PermissionViewAnalytics        Permission = "view_analytics"
	PermissionViewOwnPolicies      Permission = "view_own_policies"
)

// Role constants for the three-tier hierarchy.
const (
	RoleAdmin             = "admin"
	RoleWholesaleReseller = "wholesale_reseller"
	RoleCustomer          = "customer"
)

type roleSpec struct {
	Level       int
	Permissions map[Permission]bool
}

// roles is the fixed role hierarchy. Levels compare numerically: a role
// satisfies a requirement when its level is at least the required level.
var roles = map[string]roleSpec{
	RoleAdmin: {
		Level:       100,
		Permissions: permSet(PermissionAll),
	},
	RoleWholesaleReseller: {
		Level: 50,
		Permissions: permSet(
			PermissionViewWholesalePricing,
			PermissionCreateQuotes,
			PermissionManageCustomers,
			PermissionViewAnalytics,
		),
	},
	RoleCustomer: {
		Level: 10,
		Permissions: permSet(
			PermissionViewRetailPricing,
			PermissionCreateQuotes,
			PermissionViewOwnPolicies,
		),
	},
}

func permSet(perms ...Permission) map[Permission]bool {
	set := make(map[Permission]bool, len(perms))
	for _, p := range perms {
		set[p] = true
	}
	return set
}

// HasPermission reports whether a role grants the permission, honoring the
// admin wildcard. Unknown roles grant nothing.
func HasPermission(role string, perm Permission) bool {
	spec, ok := roles[role]
	if !ok {
		return false
	}
	return spec.Permissions[PermissionAll] || spec.Permissions[perm]
}

// RoleLevel returns the numeric level for a role, 0 for unknown roles.
func RoleLevel(role string) int {
	return roles[role].Level
}

// IsValidRole reports whether the role exists in the hierarchy.
func IsValidRole(role string) bool {
	_, ok := roles[role]
	return ok
}
