package repository

import (
	"context"
	"fmt"

	"gramvista/internal/model"
)

// BookingRepository defines operations for experience bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *model.ExperienceBooking) error
	FindByUser(ctx context.Context, userID int64) ([]model.ExperienceBooking, error)
}

type bookingRepository struct {
	db DBTX
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DBTX) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *model.ExperienceBooking) error {
	sql := `INSERT INTO experience_bookings (user_id, class_name, slot, provider_id, booking_date, notes, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, b.UserID, b.ClassName, b.Time, b.ProviderID, b.Date, b.Notes, b.CreatedAt).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID int64) ([]model.ExperienceBooking, error) {
	sql := `SELECT id, user_id, class_name, slot, provider_id, booking_date, notes, created_at
            FROM experience_bookings WHERE user_id = $1 ORDER BY booking_date DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by user: %w", err)
	}
	defer rows.Close()

	bookings := []model.ExperienceBooking{}
	for rows.Next() {
		var b model.ExperienceBooking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ClassName, &b.Time, &b.ProviderID, &b.Date, &b.Notes, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}
	return bookings, nil
}
