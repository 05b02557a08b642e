package entities

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/FuturFusion/security-manager/internal/db"
	"github.com/FuturFusion/security-manager/internal/securite"
)

func init() {
	mapErr = securiteMapErr
}

func securiteMapErr(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s: %w", entity, securite.ErrNotFound)
	}

	if errors.Is(err, ErrConflict) {
		return fmt.Errorf("%s: %w", entity, securite.ErrConstraintViolation)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: %v", securite.ErrConstraintViolation, err)
		}
	}

	return db.MapDBError(err)
}
