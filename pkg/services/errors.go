// Package services provides the operation layer the API boundary invokes,
// along with error classification helpers that map failures to response
// classes.
package services

import (
	"errors"

	"github.com/sree04/workflow-backend/pkg/persistence"
	"github.com/sree04/workflow-backend/pkg/validation"
)

// IsValidationError checks if an error is a rule violation that should
// surface as a client input error (HTTP 400).
func IsValidationError(err error) bool {
	var verr *validation.Error

	return errors.As(err, &verr) && !verr.Conflict()
}

// IsConflictError checks if an error marks a "specific" transition target
// outside the owning workflow (HTTP 409).
func IsConflictError(err error) bool {
	var verr *validation.Error

	return errors.As(err, &verr) && verr.Conflict()
}

// IsNotFoundError checks if an error indicates an absent workflow or stage
// (HTTP 404).
func IsNotFoundError(err error) bool {
	return persistence.IsNotFound(err)
}
