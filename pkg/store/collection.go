package store

import (
	"encoding/json"
	"errors"

	"tableflip.dev/storyjournal/pkg/logger"
)

// Load reads the collection stored under key. A missing key or a value that
// does not decode as an array yields an empty collection; corruption is
// logged, never returned.
func Load[T any](kv KV, key string) []T {
	if kv == nil {
		return []T{}
	}
	data, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("store: read collection", "key", key, "error", err)
		}
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("store: corrupt collection, using empty", "key", key, "error", err)
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}

// Save replaces the collection stored under key.
func Save[T any](kv KV, key string, items []T) error {
	if kv == nil {
		return errors.New("store: no store configured")
	}
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return kv.Set(key, data)
}
