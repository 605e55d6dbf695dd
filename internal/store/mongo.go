// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/migrations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is the shared connection to the salon database. One client serves all
// repositories for the lifetime of the process.
type DB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo creates the client, pings the primary and selects the
// configured database. ConnectTimeout bounds both steps.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	uri, err := cfg.ConnectionURI()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}

	// ping database
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrConnectingDB, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("db", cfg.Name).Msg("connected to database successfully")

	return &DB{
		Database: client.Database(cfg.Name),
		client:   client,
		logger:   log,
	}, nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	if db == nil || db.client == nil {
		return nil
	}

	if err := db.client.Disconnect(ctx); err != nil {
		db.logger.Err(err).Str("func", "*DB.Close").Msg("error disconnecting database")
		return err
	}
	db.logger.Info().Str("func", "*DB.Close").Msg("database disconnected")

	return nil
}

// Migrate ensures the lookup indexes exist.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.Database)
}
