package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when an insert hits a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a delete is blocked by a foreign key.
	ErrReferenced = errors.New("record is still referenced")
	// ErrNotFound aliases gorm's sentinel so callers need not import gorm.
	ErrNotFound = gorm.ErrRecordNotFound
)

// translate maps driver errors onto the repository sentinels.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrDuplicate, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrReferenced, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
