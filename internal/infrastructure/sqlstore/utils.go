package sqlstore

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isUniqueViolation verifica si un error es una violación de constraint único
// (23505 en PostgreSQL, SQLITE_CONSTRAINT_UNIQUE en SQLite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nullString "" se persiste como NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
