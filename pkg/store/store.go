// Package store provides storage backends for craft documents.
//
// This package defines the Store interface for saving and loading craft
// documents by ID, with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - redis: Redis-backed storage for server deployments
//
// Documents are the wire form from package craftio; the redis backend
// encodes them as BSON. IDs are UUIDs assigned by Put when a document
// arrives without one.
//
// # Usage
//
//	// Development
//	st := store.NewMemory()
//
//	// Server
//	st, err := store.NewRedis(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
//	id, err := st.Put(ctx, doc)
//	doc, err = st.Get(ctx, id)
package store

import (
	"context"
	"errors"

	"github.com/partbench/partbench/pkg/craftio"
)

// ErrNotFound is returned by Get and Delete when no document has the
// given ID.
var ErrNotFound = errors.New("craft not found")

// Store is the interface for craft document storage backends.
type Store interface {
	// Get retrieves a craft document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	Get(ctx context.Context, id string) (*craftio.Document, error)

	// Put stores a craft document and returns its ID, assigning a new
	// UUID if the document has none. Existing documents are overwritten.
	Put(ctx context.Context, doc *craftio.Document) (string, error)

	// Delete removes a craft document.
	// Returns ErrNotFound if the document doesn't exist.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored craft documents.
	List(ctx context.Context) ([]string, error)
}
