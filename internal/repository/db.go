package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrEmailTaken is returned when the email unique index rejects an insert.
	ErrEmailTaken = errors.New("email already bound to a principal")
	// ErrVendorIDTaken is returned when a generated public vendor id collides.
	ErrVendorIDTaken = errors.New("vendor id already in use")
)

// Constraint names from the schema migrations.
const (
	constraintEmail    = "principals_email_key"
	constraintVendorID = "principals_vendor_id_key"
)

// DBTX is the subset of pgx used by the repositories. *pgxpool.Pool, pgx.Tx
// and pgxmock pools all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation returns the violated constraint name when err is a
// unique_violation (SQLSTATE 23505).
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
