package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this date"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGameMasterNotFound   = &NotFoundError{Entity: "game master"}
	ErrActivityNotFound     = &NotFoundError{Entity: "activity"}
	ErrAssignmentNotFound   = &NotFoundError{Entity: "assignment"}
	ErrGameNotFound         = &NotFoundError{Entity: "game"}
	ErrGameMappingNotFound  = &NotFoundError{Entity: "game mapping"}
	ErrAvailabilityNotFound = &NotFoundError{Entity: "availability"}
	ErrCompetencyNotFound   = &NotFoundError{Entity: "competency"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Already Exists Errors
var (
	ErrGameMasterExists   = &AlreadyExistsError{Entity: "game master", Context: "with this email"}
	ErrGameExists         = &AlreadyExistsError{Entity: "game", Context: "with this name"}
	ErrCompetencyExists   = &AlreadyExistsError{Entity: "competency", Context: "for this game master and game"}
	ErrAvailabilityExists = &AlreadyExistsError{Entity: "availability", Context: "for this game master and date"}
)

// Assignment Errors
var (
	ErrGMAlreadyAssigned = errors.New("game master is already assigned to this activity")
	ErrGMNotAssigned     = errors.New("game master is not assigned to this activity")
	ErrGMInactive        = errors.New("game master is not active")
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidTimeFormat       = errors.New("invalid time format, expected HH:MM")
	ErrInvalidPeriodFormat     = errors.New("invalid period format, expected YYYY-MM")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingAuthHeader  = &AuthenticationError{Message: "missing or malformed authorization header"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}
