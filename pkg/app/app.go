// Package app holds the journal's practice operations, shared by the CLI,
// the session UI and the MCP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/storyjournal/pkg/logger"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

// Service provides high-level operations over the journal's collections.
// Every operation reads the whole collection and writes it back whole.
type Service struct {
	Store store.KV

	// Now and NewID default to the wall clock and record.NewID.
	Now   func() time.Time
	NewID func() string
}

var (
	ErrNotFound = errors.New("app: record not found")
	errNoStore  = errors.New("app: no store configured")
)

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) id() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return record.NewID()
}

func (s *Service) ready() error {
	if s == nil || s.Store == nil {
		return errNoStore
	}
	return nil
}

// WriteEntry saves a free (prompt nil) or prompted journal entry.
func (s *Service) WriteEntry(_ context.Context, title, content string, prompt *string) (record.JournalEntry, error) {
	if err := s.ready(); err != nil {
		return record.JournalEntry{}, err
	}
	if err := check(entryInput{Content: content}); err != nil {
		return record.JournalEntry{}, err
	}
	e := record.NewJournalEntry(s.id(), s.now(), title, content, prompt)
	if err := prepend(s.Store, record.KindEntries, e, nil); err != nil {
		return record.JournalEntry{}, err
	}
	logger.Debug("saved journal entry", "id", e.ID, "words", record.WordCount(e.Content))
	return e, nil
}

// Entries lists journal entries, newest first.
func (s *Service) Entries(_ context.Context) ([]record.JournalEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return store.Load[record.JournalEntry](s.Store, record.KindEntries.Key()), nil
}

// Entry looks up one journal entry.
func (s *Service) Entry(ctx context.Context, id string) (record.JournalEntry, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return record.JournalEntry{}, err
	}
	if i := record.Index(all, id); i >= 0 {
		return all[i], nil
	}
	return record.JournalEntry{}, ErrNotFound
}

// DeleteEntry removes a journal entry permanently.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	return s.Delete(ctx, record.KindEntries, id)
}

// SaveMorningPages saves a morning pages session of the given minutes.
func (s *Service) SaveMorningPages(_ context.Context, content string, minutes int) (record.MorningPages, error) {
	if err := s.ready(); err != nil {
		return record.MorningPages{}, err
	}
	if err := check(sessionInput{Content: content, Duration: minutes}); err != nil {
		return record.MorningPages{}, err
	}
	m := record.NewMorningPages(s.id(), s.now(), content, minutes)
	if err := prepend(s.Store, record.KindMorningPages, m, nil); err != nil {
		return record.MorningPages{}, err
	}
	return m, nil
}

// SavePromptResponse answers a prompt.
func (s *Service) SavePromptResponse(_ context.Context, prompt, content string) (record.PromptResponse, error) {
	if err := s.ready(); err != nil {
		return record.PromptResponse{}, err
	}
	if err := check(responseInput{Prompt: prompt, Content: content}); err != nil {
		return record.PromptResponse{}, err
	}
	p := record.NewPromptResponse(s.id(), s.now(), prompt, content)
	if err := prepend(s.Store, record.KindPromptResponses, p, nil); err != nil {
		return record.PromptResponse{}, err
	}
	return p, nil
}

// SaveHomework records today's homework-for-life moment, replacing any
// entry already saved for the same day.
func (s *Service) SaveHomework(_ context.Context, moment, why, story string) (record.HomeworkEntry, error) {
	if err := s.ready(); err != nil {
		return record.HomeworkEntry{}, err
	}
	if err := check(homeworkInput{Moment: moment}); err != nil {
		return record.HomeworkEntry{}, err
	}
	h := record.NewHomeworkEntry(s.id(), s.now(), moment, why, story)
	otherDays := func(e record.HomeworkEntry) bool {
		return !e.CreatedAt.SameDay(h.Created())
	}
	if err := prepend(s.Store, record.KindHomework, h, otherDays); err != nil {
		return record.HomeworkEntry{}, err
	}
	return h, nil
}

// HomeworkToday returns today's homework entry, if any.
func (s *Service) HomeworkToday(_ context.Context) (record.HomeworkEntry, bool, error) {
	if err := s.ready(); err != nil {
		return record.HomeworkEntry{}, false, err
	}
	now := s.now()
	for _, h := range store.Load[record.HomeworkEntry](s.Store, record.KindHomework.Key()) {
		if h.CreatedAt.SameDay(now) {
			return h, true, nil
		}
	}
	return record.HomeworkEntry{}, false, nil
}

// SaveStoryReceipt saves a story of at most record.MaxReceiptWords words.
func (s *Service) SaveStoryReceipt(_ context.Context, content string) (record.StoryReceipt, error) {
	if err := s.ready(); err != nil {
		return record.StoryReceipt{}, err
	}
	if err := check(receiptInput{Content: content, Words: record.WordCount(content)}); err != nil {
		return record.StoryReceipt{}, err
	}
	r := record.NewStoryReceipt(s.id(), s.now(), content)
	if err := prepend(s.Store, record.KindStoryReceipts, r, nil); err != nil {
		return record.StoryReceipt{}, err
	}
	return r, nil
}

// SaveTimedWriting saves a sprint of the given minutes, optionally prompted.
func (s *Service) SaveTimedWriting(_ context.Context, content string, minutes int, prompt *string) (record.TimedWriting, error) {
	if err := s.ready(); err != nil {
		return record.TimedWriting{}, err
	}
	if err := check(sessionInput{Content: content, Duration: minutes}); err != nil {
		return record.TimedWriting{}, err
	}
	t := record.NewTimedWriting(s.id(), s.now(), content, minutes, prompt)
	if err := prepend(s.Store, record.KindTimedWritings, t, nil); err != nil {
		return record.TimedWriting{}, err
	}
	return t, nil
}

// List returns a collection's records, newest first.
func (s *Service) List(_ context.Context, kind record.Kind) ([]record.Record, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	switch kind {
	case record.KindEntries:
		return loadAs[record.JournalEntry](s.Store, kind), nil
	case record.KindMorningPages:
		return loadAs[record.MorningPages](s.Store, kind), nil
	case record.KindPromptResponses:
		return loadAs[record.PromptResponse](s.Store, kind), nil
	case record.KindHomework:
		return loadAs[record.HomeworkEntry](s.Store, kind), nil
	case record.KindStoryReceipts:
		return loadAs[record.StoryReceipt](s.Store, kind), nil
	case record.KindTimedWritings:
		return loadAs[record.TimedWriting](s.Store, kind), nil
	}
	return nil, fmt.Errorf("app: unknown collection %q", kind)
}

// Records gathers the records of several collections, or of all of them
// when kinds is empty, newest first.
func (s *Service) Records(ctx context.Context, kinds ...record.Kind) ([]record.Record, error) {
	if len(kinds) == 0 {
		kinds = record.Kinds()
	}
	var all []record.Record
	for _, k := range kinds {
		rs, err := s.List(ctx, k)
		if err != nil {
			return nil, err
		}
		all = append(all, rs...)
	}
	record.SortNewestFirst(all)
	return all, nil
}

// Find looks a record up by id across every collection.
func (s *Service) Find(ctx context.Context, id string) (record.Kind, record.Record, error) {
	for _, k := range record.Kinds() {
		rs, err := s.List(ctx, k)
		if err != nil {
			return "", nil, err
		}
		if i := record.Index(rs, id); i >= 0 {
			return k, rs[i], nil
		}
	}
	return "", nil, ErrNotFound
}

// Delete removes the record with id from a collection.
func (s *Service) Delete(_ context.Context, kind record.Kind, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	var err error
	switch kind {
	case record.KindEntries:
		err = deleteFrom[record.JournalEntry](s.Store, kind, id)
	case record.KindMorningPages:
		err = deleteFrom[record.MorningPages](s.Store, kind, id)
	case record.KindPromptResponses:
		err = deleteFrom[record.PromptResponse](s.Store, kind, id)
	case record.KindHomework:
		err = deleteFrom[record.HomeworkEntry](s.Store, kind, id)
	case record.KindStoryReceipts:
		err = deleteFrom[record.StoryReceipt](s.Store, kind, id)
	case record.KindTimedWritings:
		err = deleteFrom[record.TimedWriting](s.Store, kind, id)
	default:
		return fmt.Errorf("app: unknown collection %q", kind)
	}
	if err == nil {
		logger.Info("deleted record", "collection", kind, "id", id)
	}
	return err
}

// prepend puts r at the head of its collection, keeping the existing
// records for which keep reports true (all of them when keep is nil).
func prepend[T record.Record](kv store.KV, kind record.Kind, r T, keep func(T) bool) error {
	existing := store.Load[T](kv, kind.Key())
	out := make([]T, 0, len(existing)+1)
	out = append(out, r)
	for _, e := range existing {
		if keep == nil || keep(e) {
			out = append(out, e)
		}
	}
	record.SortNewestFirst(out)
	return store.Save(kv, kind.Key(), out)
}

func deleteFrom[T record.Record](kv store.KV, kind record.Kind, id string) error {
	existing := store.Load[T](kv, kind.Key())
	i := record.Index(existing, id)
	if i < 0 {
		return ErrNotFound
	}
	out := append(existing[:i:i], existing[i+1:]...)
	return store.Save(kv, kind.Key(), out)
}

func loadAs[T record.Record](kv store.KV, kind record.Kind) []record.Record {
	items := store.Load[T](kv, kind.Key())
	out := make([]record.Record, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
