package service

import (
	"fmt"

	"gramvista/internal/model"
)

// Authorize fails with ErrForbidden unless p carries the required role.
func Authorize(p model.Principal, required model.Role) error {
	if p == nil || p.Role() != required {
		return fmt.Errorf("%w: %s role required", ErrForbidden, required)
	}
	return nil
}

// AsVendor narrows p to a vendor, failing with ErrForbidden for users.
func AsVendor(p model.Principal) (model.VendorPrincipal, error) {
	v, ok := p.(model.VendorPrincipal)
	if !ok {
		return model.VendorPrincipal{}, Authorize(p, model.RoleVendor)
	}
	return v, nil
}

// AsUser narrows p to a user, failing with ErrForbidden for vendors.
func AsUser(p model.Principal) (model.UserPrincipal, error) {
	u, ok := p.(model.UserPrincipal)
	if !ok {
		return model.UserPrincipal{}, Authorize(p, model.RoleUser)
	}
	return u, nil
}
