package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/storyjournal/pkg/record"
)

var base = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func entry(id string, offset time.Duration) record.JournalEntry {
	return record.NewJournalEntry(id, base.Add(offset), "t"+id, "c"+id, nil)
}

func ids(records []record.JournalEntry) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestMergeDeduplicatesByID(t *testing.T) {
	existing := []record.JournalEntry{entry("1", 0)}
	imported := []record.JournalEntry{entry("1", 0), entry("2", time.Hour)}

	merged, added := Merge(existing, imported)
	assert.Equal(t, 1, added)
	assert.ElementsMatch(t, []string{"1", "2"}, ids(merged))
}

func TestMergeIsIdempotent(t *testing.T) {
	existing := []record.JournalEntry{entry("3", 2*time.Hour), entry("2", time.Hour), entry("1", 0)}
	merged, added := Merge(existing, existing)
	assert.Equal(t, 0, added)
	assert.Equal(t, ids(existing), ids(merged))
}

func TestMergeSortsNewestFirst(t *testing.T) {
	existing := []record.JournalEntry{entry("a", time.Hour), entry("b", 5*time.Hour)}
	imported := []record.JournalEntry{entry("c", 3*time.Hour), entry("d", -time.Hour), entry("e", 10*time.Hour)}

	merged, added := Merge(existing, imported)
	assert.Equal(t, 3, added)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Created().After(merged[i-1].Created()), "not descending at %d", i)
	}
	assert.Equal(t, []string{"e", "b", "c", "a", "d"}, ids(merged))
}

func TestMergeDropsRepeatsWithinImport(t *testing.T) {
	imported := []record.JournalEntry{entry("x", 0), entry("x", time.Hour)}
	merged, added := Merge(nil, imported)
	assert.Equal(t, 1, added)
	assert.Len(t, merged, 1)
}
