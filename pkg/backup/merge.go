// Package backup exports journal collections to a JSON document and merges
// such documents back in.
package backup

import "tableflip.dev/storyjournal/pkg/record"

// Merge appends the imported records whose ids are not already present,
// then sorts newest first. It reports how many records were added.
// Duplicate ids within imported keep the first occurrence.
func Merge[T record.Record](existing, imported []T) ([]T, int) {
	seen := make(map[string]struct{}, len(existing)+len(imported))
	merged := make([]T, 0, len(existing)+len(imported))
	for _, e := range existing {
		seen[e.RecordID()] = struct{}{}
		merged = append(merged, e)
	}
	for _, i := range imported {
		if _, ok := seen[i.RecordID()]; ok {
			continue
		}
		seen[i.RecordID()] = struct{}{}
		merged = append(merged, i)
	}
	record.SortNewestFirst(merged)
	return merged, len(merged) - len(existing)
}
