// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// documentRepository is the MongoDB-backed implementation of
// [DocumentRepository] for a single collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database failures carry the request trace id.
type documentRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewDocumentRepository constructs a [DocumentRepository] over collection.
func NewDocumentRepository(collection *mongo.Collection, logger *logger.Logger) DocumentRepository {
	return newDocumentRepository(collection, logger)
}

func newDocumentRepository(collection *mongo.Collection, logger *logger.Logger) *documentRepository {
	logger.Debug().Str("collection", collection.Name()).Msg("creating document repository")
	return &documentRepository{
		logger:     logger,
		collection: collection,
	}
}

// Insert stores doc unchanged. The driver generates _id when doc has none.
func (r *documentRepository) Insert(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Insert").Str("collection", r.collection.Name()).Msg("error inserting document")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInsertingDocument, err)
	}

	return models.InsertResult{
		Acknowledged: true,
		InsertedID:   res.InsertedID,
	}, nil
}

func (r *documentRepository) FindAll(ctx context.Context) ([]models.Document, error) {
	return r.find(ctx, bson.D{})
}

func (r *documentRepository) FindByField(ctx context.Context, field, value string) ([]models.Document, error) {
	return r.find(ctx, bson.D{{Key: field, Value: value}})
}

// FindByID returns an empty slice, not an error, when nothing matches.
func (r *documentRepository) FindByID(ctx context.Context, id string) ([]models.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	return r.find(ctx, bson.D{{Key: models.FieldID, Value: oid}})
}

// DeleteByID reports DeletedCount 0 when no document matches.
func (r *documentRepository) DeleteByID(ctx context.Context, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	oid, err := objectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.D{{Key: models.FieldID, Value: oid}})
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteByID").Str("collection", r.collection.Name()).Msg("error deleting document")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrDeletingDocument, err)
	}

	return models.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}

// find runs filter and drains the cursor. The result is never nil so that an
// empty match encodes as [] rather than null.
func (r *documentRepository) find(ctx context.Context, filter bson.D) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.find").Str("collection", r.collection.Name()).Msg("error executing find")
		return nil, fmt.Errorf("%w: %w", ErrFindingDocuments, err)
	}

	docs := make([]models.Document, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*documentRepository.find").Str("collection", r.collection.Name()).Msg("error decoding documents")
		return nil, fmt.Errorf("%w: %w", ErrFindingDocuments, err)
	}

	return docs, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return oid, nil
}
