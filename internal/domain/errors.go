package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"

	// Credential errors
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgInvalidToken       = "invalid token"

	// Authorization errors
	ErrMsgPermissionDenied = "permission denied"

	// Friend errors
	ErrMsgSelfFriend = "cannot friend yourself"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)

	// Credential errors
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrInvalidToken       = errors.New(ErrMsgInvalidToken)

	// Authorization errors
	ErrPermissionDenied = errors.New(ErrMsgPermissionDenied)

	// Friend errors
	ErrSelfFriend = errors.New(ErrMsgSelfFriend)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
