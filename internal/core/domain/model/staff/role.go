package staff

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Role is the authorization level of a staff member.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin manages the dish catalog and closes shifts from the UI.
	RoleAdmin

	// RoleGarcom is waitstaff: creates and updates orders.
	RoleGarcom
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleAdmin:   "ADMIN",
		RoleGarcom:  "GARCOM",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:  "ADMIN",
		RoleGarcom: "GARCOM",
	}
}

// ParseRole converts the persisted/transported string form into a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("ADMIN", "GARCOM").
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// CanManageDishes reports whether the role may create, edit or delete dishes.
// Only administrators manage the catalog.
func (r Role) CanManageDishes() bool {
	return r == RoleAdmin
}
