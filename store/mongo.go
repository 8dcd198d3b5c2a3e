package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// MongoDialer connects to MongoDB
type MongoDialer struct {
	// DbName is the database used when the connection string does not name one
	DbName string

	// Timeout bounds server selection and the initial ping, zero uses driver defaults
	Timeout time.Duration
}

// DatabaseName returns the database a connection string refers to, falling back
// to the DbName field
func (d MongoDialer) DatabaseName(uri string) (string, error) {
	connStr, err := connstring.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse connection string: %w", err)
	}

	if connStr.Database != "" {
		return connStr.Database, nil
	}

	return d.DbName, nil
}

// Dial implements Dialer
func (d MongoDialer) Dial(ctx context.Context, uri string) (Database, error) {
	// {{{1 Build connection options
	dbName, err := d.DatabaseName(uri)
	if err != nil {
		return nil, err
	}

	connOpts := options.Client().ApplyURI(uri)
	if d.Timeout > 0 {
		connOpts.SetServerSelectionTimeout(d.Timeout)
		connOpts.SetConnectTimeout(d.Timeout)
	}

	if err := connOpts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate database connection options: %w", err)
	}

	// {{{1 Connect
	client, err := mongo.Connect(ctx, connOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pingCtx := ctx
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		// Ping already failed, the disconnect error adds nothing
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to test database connection: %w", err)
	}

	return mongoDatabase{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// mongoDatabase implements Database on top of a MongoDB client
type mongoDatabase struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection implements Database.Collection
func (d mongoDatabase) Collection(name string) Collection {
	return mongoCollection{
		coll: d.db.Collection(name),
	}
}

// Disconnect implements Database.Disconnect
func (d mongoDatabase) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// mongoCollection implements Collection on top of a MongoDB collection
type mongoCollection struct {
	coll *mongo.Collection
}

// InsertOne implements Collection.InsertOne
func (c mongoCollection) InsertOne(ctx context.Context, doc interface{}) (interface{}, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	return res.InsertedID, nil
}
