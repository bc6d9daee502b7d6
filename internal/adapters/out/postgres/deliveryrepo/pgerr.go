package deliveryrepo

import (
	"errors"

	"crown/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// NotNullViolationCode indicates a NOT NULL constraint violation.
	NotNullViolationCode = "23502"
	// CheckViolationCode indicates a check constraint violation.
	CheckViolationCode = "23514"
	// StringDataRightTruncationCode indicates a value too long for its column.
	StringDataRightTruncationCode = "22001"
)

func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// translateError turns constraint violations caused by client data into
// ValueIsInvalid errors. Everything else is returned as is.
func translateError(err error) error {
	pe, ok := AsPgError(err)
	if !ok {
		return err
	}

	switch pe.Code {
	case NotNullViolationCode, CheckViolationCode, StringDataRightTruncationCode:
		param := pe.ColumnName
		if param == "" {
			param = pe.ConstraintName
		}
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	default:
		return err
	}
}
