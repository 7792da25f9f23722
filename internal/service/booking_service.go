package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gramvista/internal/model"
	"gramvista/internal/repository"
)

// BookingService manages experience bookings made by users.
type BookingService interface {
	Create(ctx context.Context, user model.UserPrincipal, req model.CreateBookingRequest) (*model.ExperienceBooking, error)
	ListMine(ctx context.Context, user model.UserPrincipal) ([]model.ExperienceBooking, error)
}

type bookingService struct {
	repo       repository.BookingRepository
	principals repository.PrincipalRepository
	now        func() time.Time
}

// NewBookingService creates a new BookingService
func NewBookingService(repo repository.BookingRepository, principals repository.PrincipalRepository) BookingService {
	return &bookingService{repo: repo, principals: principals, now: time.Now}
}

func (s *bookingService) Create(ctx context.Context, user model.UserPrincipal, req model.CreateBookingRequest) (*model.ExperienceBooking, error) {
	className := strings.TrimSpace(req.ClassName)
	slot := strings.TrimSpace(req.Time)
	if className == "" || slot == "" || req.Date.IsZero() || req.Provider <= 0 {
		return nil, fmt.Errorf("%w: className, time, provider and date are required", ErrValidation)
	}

	ok, err := s.principals.VendorExists(ctx, req.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to check provider: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: provider %d is not a vendor", ErrNotFound, req.Provider)
	}

	booking := &model.ExperienceBooking{
		UserID:     user.ID,
		ClassName:  className,
		Time:       slot,
		ProviderID: req.Provider,
		Date:       req.Date,
		Notes:      req.Notes,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking in repo: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, user model.UserPrincipal) ([]model.ExperienceBooking, error) {
	bookings, err := s.repo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings from repo: %w", err)
	}
	return bookings, nil
}
