package model

import "time"

// Product is a catalog item listed by a vendor.
type Product struct {
	ID          int64     `json:"id"`
	VendorID    int64     `json:"vendorId"` // owning vendor principal
	ProductType string    `json:"productType"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // In paise
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateProductRequest is used for creating a new product
type CreateProductRequest struct {
	ProductType string `json:"productType" binding:"required"`
	Quantity    *int   `json:"quantity" binding:"required,gte=0"` // Pointer so that 0 passes "required"
	Description string `json:"description" binding:"required"`
	Price       *int64 `json:"price" binding:"required,gte=0"`
}
