package service

import (
	"testing"

	"gramvista/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	user := model.UserPrincipal{ID: 1}
	vendor := model.VendorPrincipal{ID: 2}

	assert.ErrorIs(t, Authorize(user, model.RoleVendor), ErrForbidden)
	assert.NoError(t, Authorize(vendor, model.RoleVendor))
	assert.NoError(t, Authorize(user, model.RoleUser))
	assert.ErrorIs(t, Authorize(vendor, model.RoleUser), ErrForbidden)
	assert.ErrorIs(t, Authorize(nil, model.RoleUser), ErrForbidden)
}

func TestAsVendorAsUser(t *testing.T) {
	v, err := AsVendor(model.VendorPrincipal{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.ID)

	_, err = AsVendor(model.UserPrincipal{ID: 1})
	assert.ErrorIs(t, err, ErrForbidden)

	u, err := AsUser(model.UserPrincipal{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = AsUser(model.VendorPrincipal{ID: 2})
	assert.ErrorIs(t, err, ErrForbidden)
}
