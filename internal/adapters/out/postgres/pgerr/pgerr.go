// Package pgerr classifies errors returned by the Postgres driver so the
// repositories can report them in terms of the errs package.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Wrap turns connection-class failures into errs.StoreUnavailableError and
// annotates everything else with the operation name.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) {
		return errs.NewStoreUnavailableError(operation, err)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// IsUnavailable reports whether err means the store could not be reached or
// went away mid-operation: SQLSTATE class 08, admin/crash shutdown (57P01 to
// 57P03), a broken driver connection or an expired deadline.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"):
			return true
		case pgErr.Code == "57P01", pgErr.Code == "57P02", pgErr.Code == "57P03":
			return true
		}
	}

	return false
}

// IsUniqueViolation reports a unique index conflict.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
