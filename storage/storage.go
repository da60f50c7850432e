package storage

import (
	"context"

	"github.com/cockroachdb/errors"
)

// System is a flat key/value blob store. Keys use '/' as a separator so that
// related blobs can be listed by prefix.
type System interface {
	Write(ctx context.Context, key string, data []byte) error
	// Read fails with an error matching ErrDoesNotExist when key is missing.
	Read(ctx context.Context, key string) ([]byte, error)
	// Delete succeeds for keys that do not exist.
	Delete(ctx context.Context, key string) error
	GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

var ErrDoesNotExist = errors.New("does not exist")
