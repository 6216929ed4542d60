package record

import (
	"encoding/json"
	"strings"
	"time"
)

// JournalEntry is a free or prompted journal entry.
type JournalEntry struct {
	Meta
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Prompt  *string `json:"prompt"`
}

// NewJournalEntry trims the input and titles untitled entries with the
// long creation date.
func NewJournalEntry(id string, now time.Time, title, content string, prompt *string) JournalEntry {
	title = strings.TrimSpace(title)
	if title == "" {
		title = FormatLong(now)
	}
	if prompt != nil && strings.TrimSpace(*prompt) == "" {
		prompt = nil
	}
	return JournalEntry{
		Meta:    NewMeta(id, now),
		Title:   title,
		Content: strings.TrimSpace(content),
		Prompt:  prompt,
	}
}

func (e JournalEntry) Text() string {
	return e.Content
}

// MorningPages is one morning pages session.
type MorningPages struct {
	Meta
	Content   string `json:"content"`
	WordCount int    `json:"wordCount"`
	Duration  int    `json:"duration"`
}

func NewMorningPages(id string, now time.Time, content string, minutes int) MorningPages {
	content = strings.TrimSpace(content)
	return MorningPages{
		Meta:      NewMeta(id, now),
		Content:   content,
		WordCount: WordCount(content),
		Duration:  minutes,
	}
}

func (m MorningPages) Text() string {
	return m.Content
}

// PromptResponse answers one prompt from the deck.
type PromptResponse struct {
	Meta
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
}

func NewPromptResponse(id string, now time.Time, prompt, content string) PromptResponse {
	return PromptResponse{
		Meta:    NewMeta(id, now),
		Prompt:  strings.TrimSpace(prompt),
		Content: strings.TrimSpace(content),
	}
}

func (p PromptResponse) Text() string {
	return p.Content
}

// HomeworkEntry is the day's homework-for-life moment. A day holds at most
// one.
type HomeworkEntry struct {
	Meta
	Moment string `json:"moment"`
	Why    string `json:"why"`
	Story  string `json:"story,omitempty"`
}

func NewHomeworkEntry(id string, now time.Time, moment, why, story string) HomeworkEntry {
	return HomeworkEntry{
		Meta:   NewMeta(id, now),
		Moment: strings.TrimSpace(moment),
		Why:    strings.TrimSpace(why),
		Story:  strings.TrimSpace(story),
	}
}

// UnmarshalJSON accepts the older "tension" field in place of "why".
func (h *HomeworkEntry) UnmarshalJSON(b []byte) error {
	type plain HomeworkEntry
	var wire struct {
		plain
		Tension string `json:"tension"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*h = HomeworkEntry(wire.plain)
	if h.Why == "" {
		h.Why = wire.Tension
	}
	return nil
}

func (h HomeworkEntry) Text() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{h.Moment, h.Why, h.Story} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n")
}

// StoryReceipt is a story told in 100 words or fewer.
type StoryReceipt struct {
	Meta
	Content   string `json:"content"`
	WordCount int    `json:"wordCount"`
}

// MaxReceiptWords bounds a story receipt. It is checked when saving, not
// by the store.
const MaxReceiptWords = 100

func NewStoryReceipt(id string, now time.Time, content string) StoryReceipt {
	content = strings.TrimSpace(content)
	return StoryReceipt{
		Meta:      NewMeta(id, now),
		Content:   content,
		WordCount: WordCount(content),
	}
}

func (s StoryReceipt) Text() string {
	return s.Content
}

// TimedWriting is one timed sprint.
type TimedWriting struct {
	Meta
	Content   string  `json:"content"`
	WordCount int     `json:"wordCount"`
	Duration  int     `json:"duration"`
	Prompt    *string `json:"prompt,omitempty"`
}

func NewTimedWriting(id string, now time.Time, content string, minutes int, prompt *string) TimedWriting {
	content = strings.TrimSpace(content)
	if prompt != nil && strings.TrimSpace(*prompt) == "" {
		prompt = nil
	}
	return TimedWriting{
		Meta:      NewMeta(id, now),
		Content:   content,
		WordCount: WordCount(content),
		Duration:  minutes,
		Prompt:    prompt,
	}
}

func (t TimedWriting) Text() string {
	return t.Content
}

// Title gives any record a one-line label for listings.
func Title(r Record) string {
	switch v := r.(type) {
	case JournalEntry:
		return v.Title
	case PromptResponse:
		return v.Prompt
	case HomeworkEntry:
		return v.Moment
	case MorningPages:
		return "Morning pages, " + FormatLong(v.Created())
	case TimedWriting:
		if v.Prompt != nil {
			return *v.Prompt
		}
		return "Timed writing, " + FormatLong(v.Created())
	case StoryReceipt:
		return "Story receipt, " + FormatLong(v.Created())
	}
	return FormatLong(r.Created())
}

// Words counts the words in a record's text.
func Words(r Record) int {
	if b, ok := r.(Body); ok {
		return WordCount(b.Text())
	}
	return 0
}
