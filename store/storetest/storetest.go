// Package storetest provides in memory implementations of the store interfaces for tests.
package storetest

import (
	"context"
	"sync"

	"github.com/kscout/credential-intake-api/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dialer is a store.Dialer which returns DB, or Err if set. If Release is not nil
// Dial blocks until it is closed.
type Dialer struct {
	// DB is returned on success
	DB *Database

	// Err is returned instead of DB if not nil
	Err error

	// Release, if not nil, must be closed before Dial returns
	Release chan struct{}

	// mu guards calls
	mu sync.Mutex

	// calls counts Dial invocations
	calls int
}

// Dial implements store.Dialer
func (d *Dialer) Dial(ctx context.Context, uri string) (store.Database, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	if d.Release != nil {
		select {
		case <-d.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if d.Err != nil {
		return nil, d.Err
	}

	return d.DB, nil
}

// Calls returns the number of times Dial was called
func (d *Dialer) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.calls
}

// Database is an in memory store.Database
type Database struct {
	// InsertErr is returned by every InsertOne call if not nil
	InsertErr error

	// mu guards the fields below
	mu sync.Mutex

	// collections by name
	collections map[string][]interface{}

	// disconnected is set by Disconnect
	disconnected bool
}

// NewDatabase creates an empty Database
func NewDatabase() *Database {
	return &Database{
		collections: map[string][]interface{}{},
	}
}

// Collection implements store.Database
func (d *Database) Collection(name string) store.Collection {
	return collection{
		db:   d,
		name: name,
	}
}

// Disconnect implements store.Database
func (d *Database) Disconnect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.disconnected = true

	return nil
}

// Disconnected reports whether Disconnect was called
func (d *Database) Disconnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.disconnected
}

// Docs returns a copy of the documents inserted into a collection
func (d *Database) Docs(name string) []interface{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	docs := make([]interface{}, len(d.collections[name]))
	copy(docs, d.collections[name])

	return docs
}

// collection is a store.Collection backed by a Database
type collection struct {
	db   *Database
	name string
}

// InsertOne implements store.Collection. Documents are stored as given and
// assigned a new ObjectID.
func (c collection) InsertOne(ctx context.Context, doc interface{}) (interface{}, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	if c.db.InsertErr != nil {
		return nil, c.db.InsertErr
	}

	c.db.collections[c.name] = append(c.db.collections[c.name], doc)

	return primitive.NewObjectID(), nil
}
