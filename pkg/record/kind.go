package record

import (
	"fmt"
	"strings"
)

// Kind names a collection: one practice, one store key.
type Kind string

const (
	KindEntries         Kind = "entries"
	KindMorningPages    Kind = "morningPages"
	KindPromptResponses Kind = "promptResponses"
	KindHomework        Kind = "homework"
	KindStoryReceipts   Kind = "storyReceipts"
	KindTimedWritings   Kind = "timedWritings"
)

const keyPrefix = "story-journal-"

var keys = map[Kind]string{
	KindEntries:         keyPrefix + "entries",
	KindMorningPages:    keyPrefix + "morning-pages",
	KindPromptResponses: keyPrefix + "prompt-responses",
	KindHomework:        keyPrefix + "homework",
	KindStoryReceipts:   keyPrefix + "story-receipts",
	KindTimedWritings:   keyPrefix + "timed-writings",
}

var descriptions = map[Kind]string{
	KindEntries:         "free or prompted journal entries",
	KindMorningPages:    "timed morning pages sessions",
	KindPromptResponses: "answers to writing prompts",
	KindHomework:        "homework for life, one moment per day",
	KindStoryReceipts:   "story receipts of 100 words or fewer",
	KindTimedWritings:   "timed writing sprints",
}

// Kinds returns every collection in display order.
func Kinds() []Kind {
	return []Kind{
		KindEntries,
		KindMorningPages,
		KindPromptResponses,
		KindHomework,
		KindStoryReceipts,
		KindTimedWritings,
	}
}

// Key is the store key the collection lives under.
func (k Kind) Key() string {
	return keys[k]
}

func (k Kind) Description() string {
	return descriptions[k]
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts a collection name, its store key, or a loose spelling
// such as "morning-pages".
func ParseKind(raw string) (Kind, error) {
	want := normalize(raw)
	for _, k := range Kinds() {
		if normalize(string(k)) == want || normalize(k.Key()) == want {
			return k, nil
		}
	}
	switch want {
	case "entry", "journal":
		return KindEntries, nil
	case "morning", "pages":
		return KindMorningPages, nil
	case "prompt", "prompts", "responses":
		return KindPromptResponses, nil
	case "hfl", "homeworkforlife":
		return KindHomework, nil
	case "receipt", "receipts":
		return KindStoryReceipts, nil
	case "timed", "sprint", "sprints":
		return KindTimedWritings, nil
	}
	return "", fmt.Errorf("record: unknown collection %q", raw)
}

// KindForKey maps a store key back to its collection.
func KindForKey(key string) (Kind, bool) {
	for k, v := range keys {
		if v == key {
			return k, true
		}
	}
	return "", false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
