package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// UndefinedTableCode indicates a query against a relation that does not exist.
const UndefinedTableCode = "42P01"

func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// WrapQueryError annotates err with op, adding a migrate hint when the schema is missing.
func WrapQueryError(op string, err error) error {
	if pe, ok := AsPgError(err); ok && pe.Code == UndefinedTableCode {
		return fmt.Errorf("%s: schema missing (run `ptashelf migrate`): %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
