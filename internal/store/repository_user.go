// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// Generic document operations are delegated to the embedded
// [documentRepository].
type userRepository struct {
	*documentRepository
}

// NewUserRepository constructs a [UserRepository] over the accounts
// collection.
func NewUserRepository(collection *mongo.Collection, logger *logger.Logger) UserRepository {
	return &userRepository{
		documentRepository: newDocumentRepository(collection, logger),
	}
}

// FindUserByEmail returns the first account whose email equals email.
// Accounts are not unique by email; which duplicate wins is driver order.
//
// Error handling:
//   - no matching document → [ErrNoUserWasFound].
//   - any other driver or decode error → wrapped [ErrFindingDocuments].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.collection.FindOne(ctx, bson.D{{Key: models.FieldEmail, Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrFindingDocuments, err)
	}

	return user, nil
}

func (r *userRepository) FindAdmins(ctx context.Context) ([]models.Document, error) {
	return r.FindByField(ctx, models.FieldRole, models.RoleAdmin)
}

// SetAdminRole applies {$set: {role: "admin"}} to the account with the given
// id. With upsert enabled an unknown id creates a document holding only _id
// and role.
func (r *userRepository) SetAdminRole(ctx context.Context, id string) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	filter := bson.D{{Key: models.FieldID, Value: oid}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: models.FieldRole, Value: models.RoleAdmin}}}}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAdminRole").Msg("error updating user role")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrUpdatingDocument, err)
	}

	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}
