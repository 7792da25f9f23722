package model

import "fmt"

// Role is the variant tag carried in tokens.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
)

// ParseRole maps a raw claim value onto a known role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleVendor:
		return RoleVendor, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

// Principal is an authenticated identity: exactly one of UserPrincipal or
// VendorPrincipal. The unexported method keeps the set closed.
type Principal interface {
	PrincipalID() int64
	Role() Role
	sealed()
}

// UserPrincipal is the identity behind a "user" token.
type UserPrincipal struct {
	ID int64 `json:"id"`
}

func (p UserPrincipal) PrincipalID() int64 { return p.ID }
func (p UserPrincipal) Role() Role         { return RoleUser }
func (UserPrincipal) sealed()              {}

// VendorPrincipal is the identity behind a "vendor" token.
type VendorPrincipal struct {
	ID int64 `json:"id"`
}

func (p VendorPrincipal) PrincipalID() int64 { return p.ID }
func (p VendorPrincipal) Role() Role         { return RoleVendor }
func (VendorPrincipal) sealed()              {}

// NewPrincipal builds the variant matching role.
func NewPrincipal(id int64, role Role) (Principal, error) {
	switch role {
	case RoleUser:
		return UserPrincipal{ID: id}, nil
	case RoleVendor:
		return VendorPrincipal{ID: id}, nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}
