// Package domain defines domain-level errors for the user feature.
package domain

import "errors"

// Domain errors for account operations. Handlers map these to HTTP
// statuses; anything else is treated as an internal failure.
var (
	// ErrEmailTaken indicates a user with the normalized email already
	// exists. Returned by registration.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound indicates no user matched the given id or email
	// where existence was expected.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for both an unknown email and
	// a wrong password so callers cannot tell which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword indicates a candidate password fails the policy.
	ErrWeakPassword = errors.New("password must be at least 8 characters with upper, lower, digit and special characters")

	// ErrPasswordMismatch indicates newPassword and confirmPassword
	// differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrNoValidFields indicates a profile update contained no
	// allow-listed field.
	ErrNoValidFields = errors.New("no valid fields to update")

	// ErrEmailMissing indicates a Google token carried no email, which
	// federated registration requires.
	ErrEmailMissing = errors.New("google account has no email")

	// ErrInvalidToken indicates a recovery token failed signature or
	// expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")
)
