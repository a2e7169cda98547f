package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("store: document not found")

// Store is the read-only view of the document store the handler layer gets.
// The mongo client itself stays with the process entry point.
type Store interface {
	// ListCollectionNames returns the names of all collections in the database.
	ListCollectionNames(ctx context.Context) ([]string, error)
	// FindAll returns every document in the named collection.
	FindAll(ctx context.Context, collection string) ([]bson.M, error)
	// FindOne returns the first document matching the filter, ErrNotFound
	// when there is none.
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	// Count returns the number of documents in the named collection.
	Count(ctx context.Context, collection string) (int64, error)
}
