// Package store persists journal collections in a local key-value store.
package store

import (
	"errors"
	"io"
)

// ErrNotFound is returned by KV.Get for keys that were never set.
var ErrNotFound = errors.New("store: key not found")

// KV is the storage capability handed to everything that reads or writes
// collections. Values are opaque bytes; writes replace the whole value.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte) error
	Keys() []string
}

// Close releases the store if it holds resources.
func Close(kv KV) error {
	if c, ok := kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
