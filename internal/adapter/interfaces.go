// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the hair salon HTTP API.
//
// [SalonAPI] wraps the routes an operator needs from the command line:
// obtaining a token, checking and granting the admin role, and removing
// users, blogs, comments and products. Non-2xx answers are mapped to the
// sentinel errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-hair-salon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SalonAPI is the operator view of the salon HTTP API.
type SalonAPI interface {
	// SetToken stores the bearer token attached to guarded requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// IssueToken requests a token for email via GET /jwt and stores it.
	// An unknown email yields [ErrForbidden].
	IssueToken(ctx context.Context, email string) (string, error)

	IsAdmin(ctx context.Context, email string) (bool, error)

	// Promote grants the admin role to the user id (admin token required).
	Promote(ctx context.Context, id string) (models.UpdateResult, error)

	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
	Blogs(ctx context.Context) ([]models.Document, error)
	DeleteBlog(ctx context.Context, id string) (models.DeleteResult, error)

	// MyComments lists the comments of email, which must match the token.
	MyComments(ctx context.Context, email string) ([]models.Document, error)

	DeleteComment(ctx context.Context, id string) (models.DeleteResult, error)
	DeleteProduct(ctx context.Context, id string) (models.DeleteResult, error)
}
