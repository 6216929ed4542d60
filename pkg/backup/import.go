package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/storyjournal/pkg/logger"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

// ErrUnreadable means the payload is not a backup this journal understands.
// Nothing was written.
var ErrUnreadable = errors.New("could not read that file")

// Result reports what an import changed.
type Result struct {
	Added   int
	ByKind  map[record.Kind]int
	Skipped []string
}

type pending struct {
	kind   record.Kind
	added  int
	commit func() error
}

// Import merges a backup document into kv. A bare array is merged into the
// journal entries; an object merges every known collection it holds as an
// array of valid records. Everything is decoded before the first write.
func Import(kv store.KV, data []byte) (Result, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Result{}, ErrUnreadable
	}

	var plans []pending
	var skipped []string

	switch trimmed[0] {
	case '[':
		p, err := plan(kv, record.KindEntries, trimmed)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		plans = append(plans, p)
	case '{':
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		names := make([]string, 0, len(doc))
		for name := range doc {
			names = append(names, name)
		}
		sort.Strings(names)
		planned := make(map[record.Kind]bool)
		for _, name := range names {
			if name == exportedAtKey {
				continue
			}
			kind, err := record.ParseKind(name)
			if err != nil {
				skipped = append(skipped, name)
				continue
			}
			if planned[kind] {
				skipped = append(skipped, name)
				continue
			}
			p, err := plan(kv, kind, doc[name])
			if err != nil {
				logger.Warn("backup: skipping collection", "collection", name, "error", err)
				skipped = append(skipped, name)
				continue
			}
			planned[kind] = true
			plans = append(plans, p)
		}
		if len(plans) == 0 {
			return Result{Skipped: skipped}, ErrUnreadable
		}
	default:
		return Result{}, ErrUnreadable
	}

	res := Result{ByKind: make(map[record.Kind]int, len(plans)), Skipped: skipped}
	for _, p := range plans {
		if err := p.commit(); err != nil {
			return res, fmt.Errorf("backup: save %s: %w", p.kind, err)
		}
		res.ByKind[p.kind] = p.added
		res.Added += p.added
	}
	return res, nil
}

func plan(kv store.KV, kind record.Kind, raw json.RawMessage) (pending, error) {
	switch kind {
	case record.KindEntries:
		return planFor[record.JournalEntry](kv, kind, raw)
	case record.KindMorningPages:
		return planFor[record.MorningPages](kv, kind, raw)
	case record.KindPromptResponses:
		return planFor[record.PromptResponse](kv, kind, raw)
	case record.KindHomework:
		return planFor[record.HomeworkEntry](kv, kind, raw)
	case record.KindStoryReceipts:
		return planFor[record.StoryReceipt](kv, kind, raw)
	case record.KindTimedWritings:
		return planFor[record.TimedWriting](kv, kind, raw)
	}
	return pending{}, fmt.Errorf("unknown collection %q", kind)
}

func planFor[T record.Record](kv store.KV, kind record.Kind, raw json.RawMessage) (pending, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return pending{}, errors.New("not an array")
	}
	var imported []T
	if err := json.Unmarshal(trimmed, &imported); err != nil {
		return pending{}, err
	}
	for i, r := range imported {
		if err := record.Validate(r); err != nil {
			return pending{}, fmt.Errorf("record %d: %w", i, err)
		}
	}

	existing := store.Load[T](kv, kind.Key())
	merged, added := Merge(existing, imported)
	return pending{
		kind:  kind,
		added: added,
		commit: func() error {
			return store.Save(kv, kind.Key(), merged)
		},
	}, nil
}
