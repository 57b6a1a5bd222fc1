package domain

import "fmt"

// UserRole controls access to the admin surface.
type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleMember UserRole = "Member"
)

func ParseUserRole(s string) (UserRole, error) {
	switch r := UserRole(s); r {
	case RoleAdmin, RoleMember:
		return r, nil
	}
	return "", fmt.Errorf("%w: user role %q", ErrInvalidValue, s)
}

// User is an operator account able to sign in to the admin shell.
type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Password    string   `json:"password,omitempty"`
	FullName    string   `json:"fullName"`
	Role        UserRole `json:"role"`
	Permissions []string `json:"permissions"`
}

// UserUpdate carries a sparse set of changes; nil fields are left untouched.
type UserUpdate struct {
	Email       *string   `json:"email,omitempty"`
	Password    *string   `json:"password,omitempty"`
	FullName    *string   `json:"fullName,omitempty"`
	Role        *UserRole `json:"role,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}
