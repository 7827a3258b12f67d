package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a named document does not exist or cannot be
// decoded as JSON.
var ErrNotFound = errors.New("document not found")

// Store persists named free-form JSON documents. Page content and the
// notice/gallery collections all live behind this interface; handlers never
// touch the underlying files directly.
//
// Write fully replaces the document. There is no partial-merge semantics and
// no cross-document transaction: concurrent writers to the same name race
// and the last one wins.
type Store interface {
	// Read returns the raw document, or ErrNotFound.
	Read(ctx context.Context, name string) (json.RawMessage, error)
	// Write replaces the document with data.
	Write(ctx context.Context, name string, data json.RawMessage) error
	// Ensure creates the document with initial content when it does not
	// exist yet. Idempotent.
	Ensure(ctx context.Context, name string, initial interface{}) error
}
