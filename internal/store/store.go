// Package store persists JSON documents grouped into collections and
// exposes typed repositories for users and recipes on top of them.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrDocumentNotFound is returned by Get when the collection has no
// document with the requested id.
var ErrDocumentNotFound = errors.New("document not found")

// ErrDuplicateDocument is returned by Set when the write would break a
// uniqueness constraint of the collection, such as a taken username.
var ErrDuplicateDocument = errors.New("duplicate document")

// Collection names.
const (
	UsersCollection   = "user"
	RecipesCollection = "recipes"
)

// DocumentStore is a schema-less store of JSON documents keyed by
// collection and id.
type DocumentStore interface {
	// Set creates or replaces the document stored under id. It returns
	// ErrDuplicateDocument when the collection enforces a unique field.
	Set(ctx context.Context, collection, id string, doc any) error
	// Get returns the document stored under id or ErrDocumentNotFound.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	// Where returns every document whose top-level string field equals value,
	// in insertion order.
	Where(ctx context.Context, collection, field, value string) ([]json.RawMessage, error)
	// All returns every document of the collection in insertion order.
	All(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Delete removes the document. Deleting a missing id is not an error.
	Delete(ctx context.Context, collection, id string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

func decodeAll[T any](raws []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
