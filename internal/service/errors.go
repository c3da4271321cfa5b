// Package service provides business-logic services for authentication,
// daily-state aggregation, meal and weight tracking, and workout
// recommendation, delegating persistence to repository interfaces.
package service

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// mismatched password, so login cannot be used to probe which emails
	// exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user id resolves to no record.
	// Kept distinct from store failures so handlers can answer 404
	// instead of 500.
	ErrUserNotFound = errors.New("user not found")
)
