package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// IsErrorCode reports whether err is a *pq.Error carrying the given
// Postgres error code.
func IsErrorCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	return false
}
