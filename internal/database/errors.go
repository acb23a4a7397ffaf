package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PgErrUniqueViolation is the SQLSTATE for unique_violation.
const PgErrUniqueViolation = "23505"

var (
	// ErrNotFound is returned when no item has the requested SKU.
	ErrNotFound = errors.New("item not found")

	// ErrDuplicate is returned when an insert collides with an existing SKU.
	ErrDuplicate = errors.New("duplicate key: item already exists")
)

// isDuplicateKey reports whether err is a primary/unique key violation.
// GORM translates most dialect errors to gorm.ErrDuplicatedKey; the pgconn and
// message checks catch drivers that skip translation.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == PgErrUniqueViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
