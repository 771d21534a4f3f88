package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, set PG_CONN_URL")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
)

// SQLSTATE codes from PostgreSQL class 23 (integrity constraint violation).
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	classIntegrity          = "23"
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError detects unique constraint violations (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	return sqlState(err) == codeUniqueViolation
}

// IsForeignKeyViolationError detects referential integrity violations (SQLSTATE 23503).
func IsForeignKeyViolationError(err error) bool {
	return sqlState(err) == codeForeignKeyViolation
}

// IsConstraintViolation reports any class 23 error: unique, foreign key,
// not-null or check constraint.
func IsConstraintViolation(err error) bool {
	code := sqlState(err)
	return len(code) == 5 && code[:2] == classIntegrity
}

func sqlState(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
