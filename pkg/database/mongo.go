// Package database owns the MongoDB client for the service.
//
// The client is constructed explicitly and passed into the stores that
// need it; there is no package-global handle. Process-reuse
// environments (serverless) get lazy-initialize-once semantics from
// app/bootstrap, not from this package.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productsCollection = "products"
	usersCollection    = "users"
	logsCollection     = "logs"
)

// Mongo wraps a connected client and the service database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the MongoDB connection, verifies it with a ping, and
// ensures the indexes the service relies on.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(dbName)}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	// users.email is unique: duplicate signups surface as a driver
	// duplicate-key error instead of a second document.
	_, err := m.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("database: users email index: %w", err)
	}

	// products.id backs the catalog-facing integer key used by
	// removeproduct and the next-id scan.
	_, err = m.Products().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("database: products id index: %w", err)
	}
	return nil
}

// Products returns the product collection.
func (m *Mongo) Products() *mongo.Collection { return m.db.Collection(productsCollection) }

// Users returns the user collection.
func (m *Mongo) Users() *mongo.Collection { return m.db.Collection(usersCollection) }

// Logs returns the collection used by the async MongoDB log sink.
func (m *Mongo) Logs() *mongo.Collection { return m.db.Collection(logsCollection) }

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
