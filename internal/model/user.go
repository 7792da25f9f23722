package model

import "time"

// User is a shopper account. Users book experiences and never own products.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal returns the typed principal for this account.
func (u *User) Principal() UserPrincipal {
	return UserPrincipal{ID: u.ID}
}

// Vendor is a seller account. VendorID is the public identifier handed out at
// signup; ID stays internal.
type Vendor struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	VendorID     string    `json:"vendorId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal returns the typed principal for this account.
func (v *Vendor) Principal() VendorPrincipal {
	return VendorPrincipal{ID: v.ID}
}
