package repository

import (
	"context"
	"errors"
	"fmt"

	"gramvista/internal/model"

	"github.com/jackc/pgx/v5"
)

// PrincipalRepository stores users and vendors. Both variants live in one
// email namespace: Create* fails with ErrEmailTaken whichever variant already
// holds the address. Find* return (nil, nil) when nothing matches.
type PrincipalRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	CreateVendor(ctx context.Context, vendor *model.Vendor) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindVendorByEmail(ctx context.Context, email string) (*model.Vendor, error)
	// RoleByEmail reports which variant owns email, or "" if none does.
	RoleByEmail(ctx context.Context, email string) (model.Role, error)
	VendorExists(ctx context.Context, id int64) (bool, error)
}

type principalRepository struct {
	db DBTX
}

// NewPrincipalRepository creates a new PrincipalRepository
func NewPrincipalRepository(db DBTX) PrincipalRepository {
	return &principalRepository{db: db}
}

func (r *principalRepository) CreateUser(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO principals (role, email, password_hash, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, string(model.RoleUser), user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return mapInsertError("user", err)
	}
	return nil
}

func (r *principalRepository) CreateVendor(ctx context.Context, vendor *model.Vendor) error {
	sql := `INSERT INTO principals (role, email, password_hash, vendor_id, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, string(model.RoleVendor), vendor.Email, vendor.PasswordHash, vendor.VendorID, vendor.CreatedAt).Scan(&vendor.ID)
	if err != nil {
		return mapInsertError("vendor", err)
	}
	return nil
}

func mapInsertError(kind string, err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case constraintEmail:
			return ErrEmailTaken
		case constraintVendorID:
			return ErrVendorIDTaken
		}
	}
	return fmt.Errorf("failed to create %s: %w", kind, err)
}

// FindUserByEmail retrieves a user by email. Vendors with that email are not returned.
func (r *principalRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, email, password_hash, created_at FROM principals WHERE email = $1 AND role = $2`
	err := r.db.QueryRow(ctx, sql, email, string(model.RoleUser)).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindVendorByEmail retrieves a vendor by email. Users with that email are not returned.
func (r *principalRepository) FindVendorByEmail(ctx context.Context, email string) (*model.Vendor, error) {
	vendor := &model.Vendor{}
	sql := `SELECT id, email, password_hash, vendor_id, created_at FROM principals WHERE email = $1 AND role = $2`
	err := r.db.QueryRow(ctx, sql, email, string(model.RoleVendor)).Scan(&vendor.ID, &vendor.Email, &vendor.PasswordHash, &vendor.VendorID, &vendor.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vendor by email: %w", err)
	}
	return vendor, nil
}

func (r *principalRepository) RoleByEmail(ctx context.Context, email string) (model.Role, error) {
	var role string
	err := r.db.QueryRow(ctx, `SELECT role FROM principals WHERE email = $1`, email).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up email: %w", err)
	}
	return model.ParseRole(role)
}

func (r *principalRepository) VendorExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS (SELECT 1 FROM principals WHERE id = $1 AND role = $2)`
	if err := r.db.QueryRow(ctx, sql, id, string(model.RoleVendor)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check vendor: %w", err)
	}
	return exists, nil
}
