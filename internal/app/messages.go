// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the fixed response texts of the salon API.
//
// Clients match on some of these strings, so they are kept byte-for-byte
// stable, including capitalisation and spelling.
package app

const (
	// MsgServerRunning is the plain-text body of the liveness route.
	MsgServerRunning = "Hair Saloon server is running"

	// MsgForbiddenAccess is returned by the token and admin guards.
	MsgForbiddenAccess = "Forbidden Access"

	// MsgForbiddenOwnAccess is returned when a caller asks for another
	// account's comments.
	MsgForbiddenOwnAccess = "Forbidden access"
)
