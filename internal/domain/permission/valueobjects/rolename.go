package valueobjects

import (
	"fmt"
	"unicode/utf8"
)

const MaxRoleNameLength = 100

// RoleName is the identity-provider role a permission applies to.
type RoleName string

func NewRoleName(name string) (RoleName, error) {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return "", fmt.Errorf("role_name is required")
	}
	if n > MaxRoleNameLength {
		return "", fmt.Errorf("role_name must be at most %d characters long", MaxRoleNameLength)
	}
	return RoleName(name), nil
}

func (r RoleName) String() string {
	return string(r)
}
