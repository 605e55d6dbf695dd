// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-hair-salon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository performs single-collection operations on free-form
// documents. Every method issues exactly one driver call.
type DocumentRepository interface {
	// Insert stores doc as a new document.
	Insert(ctx context.Context, doc models.Document) (models.InsertResult, error)
	// FindAll returns every document of the collection.
	FindAll(ctx context.Context) ([]models.Document, error)
	// FindByField returns the documents whose field equals value exactly.
	FindByField(ctx context.Context, field, value string) ([]models.Document, error)
	// FindByID returns the documents whose _id equals id.
	FindByID(ctx context.Context, id string) ([]models.Document, error)
	// DeleteByID removes at most one document whose _id equals id.
	DeleteByID(ctx context.Context, id string) (models.DeleteResult, error)
}

// UserRepository extends [DocumentRepository] with the account queries used
// by the authorization layer.
type UserRepository interface {
	DocumentRepository

	// FindUserByEmail returns the first account with the given email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindAdmins returns every account whose role is "admin".
	FindAdmins(ctx context.Context) ([]models.Document, error)
	// SetAdminRole sets role to "admin" on the account with the given id,
	// inserting a new document when none matches.
	SetAdminRole(ctx context.Context, id string) (models.UpdateResult, error)
}
