package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

const exportedAtKey = "exportedAt"

// FileName is the conventional name for a backup taken at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("story-journal-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// Export renders every collection as one document keyed by collection name,
// stamped with exportedAt. Records are written as stored.
func Export(kv store.KV, now time.Time) ([]byte, error) {
	doc := make(map[string]any, len(record.Kinds())+1)
	doc[exportedAtKey] = record.At(now)
	for _, k := range record.Kinds() {
		doc[string(k)] = store.Load[json.RawMessage](kv, k.Key())
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportCollection renders one collection as a bare array, the format the
// single-collection app wrote.
func ExportCollection(kv store.KV, kind record.Kind) ([]byte, error) {
	if kind.Key() == "" {
		return nil, fmt.Errorf("backup: unknown collection %q", kind)
	}
	return json.MarshalIndent(store.Load[json.RawMessage](kv, kind.Key()), "", "  ")
}
