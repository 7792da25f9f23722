package utils

import "github.com/google/uuid"

// VendorIDPrefix starts every public vendor identifier.
const VendorIDPrefix = "VENDOR-"

// NewVendorID returns a short public identifier of the form VENDOR-xxxxxxxx
// where x is a lowercase hex digit taken from a random UUID.
func NewVendorID() string {
	return VendorIDPrefix + uuid.NewString()[:8]
}
