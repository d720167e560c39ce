package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"weatherfav/internal/config"
	"weatherfav/internal/logger"
)

// DB wraps the MongoDB client and the application database. It owns the
// connection lifecycle: the composition root calls [Connect] once at startup
// and [DB.Close] on shutdown. Repositories receive *DB by injection; there
// is no package-level connection state.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// Connect establishes the MongoDB connection, verifies it with a ping, and
// ensures the collection indexes the application relies on.
func Connect(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "Connect").Msg("error occured during document store connection")
		return nil, fmt.Errorf("error occured during document store connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "Connect").Msg("error connecting document store (ping)")
		return nil, err
	}
	log.Info().Str("func", "Connect").Msg("connected to document store successfully")

	db := &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}

	if err = db.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// Users returns the collection holding user documents.
func (db *DB) Users() *mongo.Collection {
	return db.database.Collection("users")
}

// ensureIndexes creates the unique index on username. CreateOne is a no-op
// when the index already exists, so connecting is idempotent.
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		db.logger.Err(err).Str("func", "ensureIndexes").Msg("error creating unique username index")
		return fmt.Errorf("error creating unique username index: %w", err)
	}

	return nil
}
