// Package store persists named collections as whole JSON documents.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotExist is returned by a Backend when a document was never written.
	ErrNotExist = errors.New("document does not exist")
	// ErrCorrupt marks a document that could not be decoded.
	ErrCorrupt = errors.New("collection document is corrupt")
)

// Backend reads and writes whole documents by name.
type Backend interface {
	// Read returns the raw document, or ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the document.
	Write(ctx context.Context, name string, data []byte) error
	// Kind names the backend ("json", "sqlite", ...).
	Kind() string
	Close() error
}
