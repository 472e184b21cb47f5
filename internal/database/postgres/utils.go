package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// uniqueViolation returns the violated constraint name, if err is a unique violation
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// ptrTime converts a pgtype.Timestamptz to *time.Time.
// Returns nil if the timestamp is not valid.
func ptrTime(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// ptrString converts a pgtype.Text to *string, nil when NULL
func ptrString(s pgtype.Text) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
