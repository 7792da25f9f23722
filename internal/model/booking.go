package model

import "time"

// ExperienceBooking is a user's reservation of a class run by a vendor.
type ExperienceBooking struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	ClassName  string    `json:"className"`
	Time       string    `json:"time"` // Slot label, e.g. "10:00-12:00"
	ProviderID int64     `json:"provider"`
	Date       time.Time `json:"date"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateBookingRequest is used for creating a new experience booking
type CreateBookingRequest struct {
	ClassName string    `json:"className" binding:"required"`
	Time      string    `json:"time" binding:"required"`
	Provider  int64     `json:"provider" binding:"required,gt=0"`
	Date      time.Time `json:"date" binding:"required"`
	Notes     *string   `json:"notes"`
}
