package response

import (
	"database/sql"
	"errors"
	"io/fs"
	"net/http"

	"github.com/lxc/incus/v6/shared/api"

	"github.com/FuturFusion/security-manager/internal/securite"
)

// SmartError returns the right error message based on err.
func SmartError(err error) Response {
	if err == nil {
		return EmptySyncResponse
	}

	var validationErr securite.ValidationErr

	switch {
	case errors.Is(err, securite.ErrNotFound),
		errors.Is(err, sql.ErrNoRows),
		errors.Is(err, fs.ErrNotExist):
		return NotFound(err)

	case errors.Is(err, securite.ErrConstraintViolation):
		return Conflict(err)

	case errors.Is(err, securite.ErrOperationNotPermitted),
		errors.Is(err, securite.ErrIllegalArgument),
		errors.As(err, &validationErr):
		return BadRequest(err)

	case errors.Is(err, fs.ErrPermission):
		return Forbidden(err)
	}

	statusCode, found := api.StatusErrorMatch(err)
	if found {
		return &errorResponse{statusCode, err.Error()}
	}

	return &errorResponse{http.StatusInternalServerError, err.Error()}
}
