package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
)

// checkID rejects malformed identifiers as not-found so they never reach the store.
func checkID(id, resource string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, resource+" not found")
	}
	return nil
}

// storeError maps repository failures to application errors.
func storeError(err error, resource, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, resource+" not found")
	}
	return appErrors.Internal(err, "failed to "+action+" "+resource)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
