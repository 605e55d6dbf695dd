// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, and JWT token generation and
// validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key under which the credential verifier stores the
// email claim of an authenticated request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "a@x.com")
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the authenticated email from the context.
//
// Returns the email and an ok flag:
//   - ok == true : value is present, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
