package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gramvista/internal/model"
	"gramvista/internal/repository"
	"gramvista/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Redirect targets returned to the frontend after signup or login.
const (
	UserRedirect   = "/user/dashboard"
	VendorRedirect = "/vendor/dashboard"
)

const vendorIDAttempts = 3

// AuthResult is what signup and login hand back to the caller.
type AuthResult struct {
	Token     string
	Redirect  string
	VendorID  string // vendors only
	Principal model.Principal
}

// AuthService provides authentication related services
type AuthService interface {
	RegisterUser(ctx context.Context, email, password string) (*AuthResult, error)
	RegisterVendor(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string, role model.Role) (*AuthResult, error)
	VerifyToken(token string) (model.Principal, error)
	Authorize(p model.Principal, required model.Role) error
	ForgotPassword(ctx context.Context, email string) error
}

type authService struct {
	repo     repository.PrincipalRepository
	jwtUtil  *utils.JWTUtil
	notifier ResetNotifier
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewAuthService creates a new AuthService
func NewAuthService(repo repository.PrincipalRepository, jwtUtil *utils.JWTUtil, notifier ResetNotifier, log zerolog.Logger) AuthService {
	return &authService{
		repo:     repo,
		jwtUtil:  jwtUtil,
		notifier: notifier,
		log:      log.With().Str("component", "auth").Logger(),
		now:      time.Now,
		newID:    utils.NewVendorID,
	}
}

// NormalizeEmail trims and lowercases an address so that lookups and the
// unique index agree on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var validate = validator.New()

// validateCredentials expects an already normalized email.
func validateCredentials(email, password string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if err := validate.Var(email, "email"); err != nil {
		return fmt.Errorf("%w: email is malformed", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return nil
}

// validateSignup adds the limits that only apply to new passwords.
func validateSignup(email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	if len(password) > utils.MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, utils.MaxPasswordBytes)
	}
	return nil
}

// passwordMatches never accepts an input longer than any stored password.
func passwordMatches(password, hash string) bool {
	return len(password) <= utils.MaxPasswordBytes && utils.CheckPasswordHash(password, hash)
}

// RegisterUser creates a user account. The email must be free in both variants.
func (s *authService) RegisterUser(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if err := validateSignup(email, password); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    s.now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	s.log.Info().Int64("principal_id", user.ID).Msg("user registered")

	return s.issue(user.Principal(), "")
}

// RegisterVendor creates a vendor account with a fresh public vendor id.
func (s *authService) RegisterVendor(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if err := validateSignup(email, password); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	vendor := &model.Vendor{
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    s.now(),
	}
	for attempt := 1; ; attempt++ {
		vendor.VendorID = s.newID()
		err = s.repo.CreateVendor(ctx, vendor)
		if err == nil {
			break
		}
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, ErrDuplicateEmail
		case errors.Is(err, repository.ErrVendorIDTaken) && attempt < vendorIDAttempts:
			s.log.Warn().Str("vendor_id", vendor.VendorID).Msg("vendor id collision, regenerating")
			continue
		}
		return nil, fmt.Errorf("failed to create vendor in repository: %w", err)
	}
	s.log.Info().Int64("principal_id", vendor.ID).Str("vendor_id", vendor.VendorID).Msg("vendor registered")

	return s.issue(vendor.Principal(), vendor.VendorID)
}

// Login authenticates against the store of the given role only.
func (s *authService) Login(ctx context.Context, email, password string, role model.Role) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	switch role {
	case model.RoleUser:
		user, err := s.repo.FindUserByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("error finding user by email: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("%w: no user with this email", ErrNotFound)
		}
		if !passwordMatches(password, user.PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		return s.issue(user.Principal(), "")

	case model.RoleVendor:
		vendor, err := s.repo.FindVendorByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("error finding vendor by email: %w", err)
		}
		if vendor == nil {
			return nil, fmt.Errorf("%w: no vendor with this email", ErrNotFound)
		}
		if !passwordMatches(password, vendor.PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		return s.issue(vendor.Principal(), vendor.VendorID)
	}
	return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
}

func (s *authService) issue(p model.Principal, vendorID string) (*AuthResult, error) {
	token, err := s.jwtUtil.GenerateToken(p.PrincipalID(), p.Role().String())
	if err != nil {
		s.log.Error().Err(err).Int64("principal_id", p.PrincipalID()).Msg("failed to generate token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	redirect := UserRedirect
	if p.Role() == model.RoleVendor {
		redirect = VendorRedirect
	}
	return &AuthResult{Token: token, Redirect: redirect, VendorID: vendorID, Principal: p}, nil
}

// VerifyToken resolves a bearer token to its principal. It performs no store
// access, so a token stays valid until expiry.
func (s *authService) VerifyToken(token string) (model.Principal, error) {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.PrincipalID <= 0 {
		return nil, fmt.Errorf("%w: missing principal id", ErrInvalidToken)
	}
	return model.NewPrincipal(claims.PrincipalID, role)
}

func (s *authService) Authorize(p model.Principal, required model.Role) error {
	return Authorize(p, required)
}

// ForgotPassword checks the email is known and hands it to the notifier.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if err := validate.Var(email, "email"); err != nil {
		return fmt.Errorf("%w: email is malformed", ErrValidation)
	}

	role, err := s.repo.RoleByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error looking up email: %w", err)
	}
	if role == "" {
		return fmt.Errorf("%w: email not registered", ErrNotFound)
	}
	if err := s.notifier.PasswordResetRequested(ctx, email, role); err != nil {
		return fmt.Errorf("failed to dispatch password reset: %w", err)
	}
	return nil
}
