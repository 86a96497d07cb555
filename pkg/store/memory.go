package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/partbench/partbench/pkg/craftio"
)

// Memory is an in-memory craft store for development and testing.
// Documents are deep-copied on the way in and out (through the same BSON
// encoding the redis backend uses), so callers can't alias stored state.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Get retrieves a craft document by ID.
func (m *Memory) Get(ctx context.Context, id string) (*craftio.Document, error) {
	m.mu.RLock()
	data, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decodeDocument(data)
}

// Put stores a craft document, assigning a UUID if it has none.
func (m *Memory) Put(ctx context.Context, doc *craftio.Document) (string, error) {
	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	data, err := encodeDocument(doc, id)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.docs[id] = data
	m.mu.Unlock()
	return id, nil
}

// Delete removes a craft document.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

// List returns the IDs of all stored craft documents in sorted order.
func (m *Memory) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.docs)), nil
}

// encodeDocument marshals a document to BSON with the given ID stamped in.
// The input document is not modified.
func encodeDocument(doc *craftio.Document, id string) ([]byte, error) {
	stamped := *doc
	stamped.ID = id
	return bson.Marshal(&stamped)
}

func decodeDocument(data []byte) (*craftio.Document, error) {
	var doc craftio.Document
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
