package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var errInvalidID = errors.New("invalid appointment id")

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// writeServiceError maps a service failure to its response.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		httperr.Unavailable(c, "storage_unavailable", "Appointment store unavailable.")
	case errors.Is(err, domain.ErrInvalidNumericInput):
		httperr.BadRequest(c, "invalid_numeric_input", "Age must be a whole number.")
	default:
		if code, ok := httperr.CodeOf(err); ok {
			httperr.BadRequest(c, code, err.Error())
			return
		}
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
