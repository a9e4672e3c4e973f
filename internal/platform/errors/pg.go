package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlstateCodes classifies the SQLSTATEs the review table can raise.
// Anything else from Postgres is a DB error
var sqlstateCodes = map[string]ErrorCode{
	"23505": ErrorCodeConflict,   // unique_violation: record id already taken
	"23503": ErrorCodeValidation, // foreign_key_violation
	"23502": ErrorCodeValidation, // not_null_violation
	"23514": ErrorCodeValidation, // check_violation: status or tag outside the allowed set
	"22001": ErrorCodeValidation, // string_data_right_truncation
	"22P02": ErrorCodeValidation, // invalid_text_representation
	"40001": ErrorCodeDB,         // serialization_failure
	"40P01": ErrorCodeDB,         // deadlock_detected
	"55P03": ErrorCodeDB,         // lock_not_available
	"25006": ErrorCodeUnavailable,
	"57P03": ErrorCodeUnavailable,
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// IsSQLState reports whether err wraps a Postgres error with the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == state
}

// IsCheckViolation reports a CHECK constraint failure
func IsCheckViolation(err error) bool { return IsSQLState(err, "23514") }

// FromPostgres wraps a driver error under the code its SQLSTATE maps to,
// naming the column when Postgres reports one. nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	pgErr, ok := pgError(err)
	if !ok {
		return Wrap(err, ErrorCodeDB, msg)
	}
	code, known := sqlstateCodes[pgErr.Code]
	if !known {
		code = ErrorCodeDB
	}
	out := Wrap(err, code, msg)
	if pgErr.ColumnName != "" {
		out = WithField(out, pgErr.ColumnName)
	}
	return out
}
