package errors

import (
	"errors"
	"fmt"
)

// Error kinds for the music catalog server. Every failure a service returns
// wraps exactly one of these, so the HTTP layer can map it to a status code
// without inspecting messages.
var (
	// ErrInvariant - request is well-formed but violates a business rule
	// (duplicate username, unknown or revoked refresh token, duplicate collaborator).
	ErrInvariant = errors.New("invariant violation")

	// ErrAuthentication - credentials or token invalid/expired.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAuthorization - authenticated identity lacks rights over the target resource.
	ErrAuthorization = errors.New("not authorized")

	// ErrNotFound - referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)

// Invariantf builds an ErrInvariant with a formatted message.
func Invariantf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvariant)...)
}

// Authenticationf builds an ErrAuthentication with a formatted message.
func Authenticationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrAuthentication)...)
}

// Authorizationf builds an ErrAuthorization with a formatted message.
func Authorizationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrAuthorization)...)
}

// NotFoundf builds an ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
