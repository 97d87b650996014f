package appointment

import (
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotFound           = errors.New("appointment not found")
	ErrUnknownField       = errors.New("unknown search field")
)

// ErrInvalidNumericInput is returned when the age cannot be coerced to an
// integer. Nothing is written when it occurs.
var ErrInvalidNumericInput = httperr.ErrBusiness("invalid_numeric_input")
