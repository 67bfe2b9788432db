package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate signals a uniqueness-constraint violation (email, or a
// (user, book) pair that already exists).
var ErrDuplicate = errors.New("duplicate record")

// isUniqueViolation checks the postgres error code so services can map
// conflicts without parsing error text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
