package db

import (
	"net/http"
	"strings"

	"github.com/lxc/incus/v6/shared/api"
)

// MapDBError turns constraint failures reported as plain text by the driver,
// possibly wrapped by the caller, into bad request status errors. Other errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	for _, prefix := range []string{"UNIQUE constraint failed", "FOREIGN KEY constraint failed", "NOT NULL constraint failed"} {
		if strings.Contains(err.Error(), prefix) {
			return api.StatusErrorf(http.StatusBadRequest, "Database operation failed: %v", err)
		}
	}

	return err
}
