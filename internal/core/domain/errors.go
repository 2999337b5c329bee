package domain

import "errors"

// Auth error taxonomy. Each maps to a fixed HTTP status and user-facing
// message at the handler boundary; anything outside this set is reported
// as a generic 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// User management errors
var (
	ErrDuplicateUser      = errors.New("username, email or contact number already exists")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)
