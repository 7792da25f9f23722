package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gramvista/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestPrincipalRepository_CreateUser(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("INSERT INTO principals").
		WithArgs("user", "a@x.com", "hash", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	user := &model.User{Email: "a@x.com", PasswordHash: "hash", CreatedAt: time.Now()}
	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_CreateUser_EmailTaken(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("INSERT INTO principals").
		WithArgs("user", "a@x.com", "hash", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "principals_email_key"})

	err := repo.CreateUser(context.Background(), &model.User{Email: "a@x.com", PasswordHash: "hash"})

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_CreateVendor(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("INSERT INTO principals").
		WithArgs("vendor", "v@x.com", "hash", "VENDOR-0a1b2c3d", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	vendor := &model.Vendor{Email: "v@x.com", PasswordHash: "hash", VendorID: "VENDOR-0a1b2c3d"}
	err := repo.CreateVendor(context.Background(), vendor)

	require.NoError(t, err)
	assert.Equal(t, int64(5), vendor.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_CreateVendor_Conflicts(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"email", "principals_email_key", ErrEmailTaken},
		{"vendor id", "principals_vendor_id_key", ErrVendorIDTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewPrincipalRepository(mock)

			mock.ExpectQuery("INSERT INTO principals").
				WithArgs("vendor", "v@x.com", "", "VENDOR-00000000", pgxmock.AnyArg()).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			err := repo.CreateVendor(context.Background(), &model.Vendor{Email: "v@x.com", VendorID: "VENDOR-00000000"})
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPrincipalRepository_CreateUser_OtherError(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	boom := errors.New("connection reset")
	mock.ExpectQuery("INSERT INTO principals").
		WithArgs("user", "a@x.com", "", pgxmock.AnyArg()).
		WillReturnError(boom)

	err := repo.CreateUser(context.Background(), &model.User{Email: "a@x.com"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_CreateUser_UniqueOnOtherConstraint(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("INSERT INTO principals").
		WithArgs("user", "a@x.com", "", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "some_other_key"})

	err := repo.CreateUser(context.Background(), &model.User{Email: "a@x.com"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_FindUserByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM principals").
		WithArgs("a@x.com", "user").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(int64(3), "a@x.com", "hash", created))

	user, err := repo.FindUserByEmail(context.Background(), "a@x.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, created, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_FindUserByEmail_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM principals").
		WithArgs("nobody@x.com", "user").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindUserByEmail(context.Background(), "nobody@x.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestPrincipalRepository_FindVendorByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("SELECT id, email, password_hash, vendor_id, created_at FROM principals").
		WithArgs("v@x.com", "vendor").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "vendor_id", "created_at"}).
			AddRow(int64(8), "v@x.com", "hash", "VENDOR-deadbeef", time.Now()))

	vendor, err := repo.FindVendorByEmail(context.Background(), "v@x.com")

	require.NoError(t, err)
	require.NotNil(t, vendor)
	assert.Equal(t, "VENDOR-deadbeef", vendor.VendorID)
}

func TestPrincipalRepository_RoleByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("SELECT role FROM principals").
		WithArgs("v@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow("vendor"))
	mock.ExpectQuery("SELECT role FROM principals").
		WithArgs("none@x.com").
		WillReturnError(pgx.ErrNoRows)

	role, err := repo.RoleByEmail(context.Background(), "v@x.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleVendor, role)

	role, err = repo.RoleByEmail(context.Background(), "none@x.com")
	require.NoError(t, err)
	assert.Equal(t, model.Role(""), role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrincipalRepository_VendorExists(t *testing.T) {
	mock := newMock(t)
	repo := NewPrincipalRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(4), "vendor").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.VendorExists(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, ok)
}
