// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidID is returned when a path identifier is not a 24-character
	// hexadecimal ObjectID.
	ErrInvalidID = errors.New("invalid document id")

	// ErrNoUserWasFound is returned when a lookup by email matches no account.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors. These wrap the driver error returned
// by the failing call.
var (
	// ErrConnectingDB is returned when the client cannot be created or the
	// initial ping fails.
	ErrConnectingDB = errors.New("error connecting to database")

	// ErrInsertingDocument is returned when an insert-one call fails.
	ErrInsertingDocument = errors.New("error inserting document")

	// ErrFindingDocuments is returned when a find call or cursor decode fails.
	ErrFindingDocuments = errors.New("error finding documents")

	// ErrUpdatingDocument is returned when an update-one call fails.
	ErrUpdatingDocument = errors.New("error updating document")

	// ErrDeletingDocument is returned when a delete-one call fails.
	ErrDeletingDocument = errors.New("error deleting document")
)
