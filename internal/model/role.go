package model

// Role is the closed set of account roles. The stored value is the
// lower-case name; anything outside this set is rejected at sign-up.
type Role string

const (
	RoleStudent       Role = "student"
	RoleManager       Role = "manager"
	RoleAccommodation Role = "accommodation"
	RoleAccess        Role = "access"
)

// ParseRole maps a submitted role value onto the closed enumeration.
// Unrecognized values return false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleManager, RoleAccommodation, RoleAccess:
		return Role(s), true
	}
	return "", false
}

// String returns the stored form of the role.
func (r Role) String() string { return string(r) }
