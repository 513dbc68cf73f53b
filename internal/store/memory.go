package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// MemoryStore is a process-local DocumentStore. Documents are kept as
// encoded JSON so callers never share mutable values with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	docs  map[string]json.RawMessage
	order []string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		c = &memoryCollection{docs: make(map[string]json.RawMessage)}
		s.collections[collection] = c
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = data
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return slices.Clone(doc), nil
}

func (s *MemoryStore) Where(ctx context.Context, collection, field, value string) ([]json.RawMessage, error) {
	all, err := s.All(ctx, collection)
	if err != nil {
		return nil, err
	}

	matches := make([]json.RawMessage, 0)
	for _, doc := range all {
		var fields map[string]any
		if err := json.Unmarshal(doc, &fields); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		if v, ok := fields[field].(string); ok && v == value {
			matches = append(matches, doc)
		}
	}
	return matches, nil
}

func (s *MemoryStore) All(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return []json.RawMessage{}, nil
	}
	out := make([]json.RawMessage, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, slices.Clone(c.docs[id]))
	}
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		return nil
	}
	if _, exists := c.docs[id]; !exists {
		return nil
	}
	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
