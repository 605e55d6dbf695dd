// Package migrations brings the salon database to the shape the API expects.
//
// Collections are created lazily by the first insert, so the only startup
// work is making sure the lookup indexes exist. All indexes are non-unique:
// documents are still stored exactly as received.
package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hair-salon/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes lists, per collection, the fields looked up by equality.
var collectionIndexes = []struct {
	collection string
	fields     []string
}{
	{collection: models.CollectionUsers, fields: []string{models.FieldEmail, models.FieldRole}},
	{collection: models.CollectionComments, fields: []string{models.FieldUserEmail}},
}

// Migrate creates the lookup indexes. Creating an index that already exists
// with the same definition is a no-op on the server, so Migrate is safe to run
// on every start.
func Migrate(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	for _, ci := range collectionIndexes {
		indexModels := make([]mongo.IndexModel, 0, len(ci.fields))
		for _, field := range ci.fields {
			indexModels = append(indexModels, mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetName(field + "_1"),
			})
		}

		if _, err := db.Collection(ci.collection).Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("migration error creating indexes on %s: %w", ci.collection, err)
		}
	}

	return nil
}
