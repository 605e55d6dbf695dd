// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/models"
)

// Storages groups one repository per salon collection.
type Storages struct {
	UserRepository    UserRepository
	LeadRepository    DocumentRepository
	BlogRepository    DocumentRepository
	CommentRepository DocumentRepository
	ProductRepository DocumentRepository
	OrderRepository   DocumentRepository

	db *DB
}

// NewStorages connects to the database described by cfg, runs the index
// migrations and builds every repository on top of the single shared client.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectMongo(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close(context.Background())
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db.Collection(models.CollectionUsers), log),
		LeadRepository:    NewDocumentRepository(db.Collection(models.CollectionInterestedCustomer), log),
		BlogRepository:    NewDocumentRepository(db.Collection(models.CollectionBlogs), log),
		CommentRepository: NewDocumentRepository(db.Collection(models.CollectionComments), log),
		ProductRepository: NewDocumentRepository(db.Collection(models.CollectionProducts), log),
		OrderRepository:   NewDocumentRepository(db.Collection(models.CollectionOrders), log),
		db:                db,
	}, nil
}

// Close releases the shared database client.
func (s *Storages) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
