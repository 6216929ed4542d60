// Package mcp provides the Model Context Protocol server integration for
// the story journal.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/record"
)

// Service projects journal operations into transport-friendly shapes.
type Service struct {
	App *app.Service
}

// CollectionSummary describes a collection and basic aggregate metadata.
type CollectionSummary struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Words       int    `json:"words"`
	Streak      int    `json:"streak"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// RecordDTO is a transport-friendly projection of any record.
type RecordDTO struct {
	ID          string `json:"id"`
	Collection  string `json:"collection"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	Prompt      string `json:"prompt,omitempty"`
	Words       int    `json:"words"`
	Duration    int    `json:"duration,omitempty"`
	CreatedISO  string `json:"created"`
	CreatedUnix int64  `json:"createdUnix"`
}

// StreakDTO reports a streak for one or all collections.
type StreakDTO struct {
	Collection string `json:"collection"`
	Days       int    `json:"days"`
	Longest    int    `json:"longest"`
}

var errNoJournal = errors.New("journal is not configured")

// NewService wraps the journal service.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

// ListCollections returns summaries for every collection.
func (s *Service) ListCollections(ctx context.Context) ([]CollectionSummary, error) {
	if s.App == nil {
		return nil, errNoJournal
	}
	st, err := s.App.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CollectionSummary, 0, len(st.Collections))
	for _, cs := range st.Collections {
		summary := CollectionSummary{
			Name:        string(cs.Kind),
			Key:         cs.Kind.Key(),
			Description: cs.Kind.Description(),
			Count:       cs.Count,
			Words:       cs.Words,
			Streak:      cs.Streak,
		}
		if !cs.Last.IsZero() {
			summary.LastUpdated = record.At(cs.Last).String()
		}
		out = append(out, summary)
	}
	return out, nil
}

// ListRecords returns a collection's records, newest first, at most limit
// when limit is positive.
func (s *Service) ListRecords(ctx context.Context, collection string, limit int) ([]RecordDTO, error) {
	if s.App == nil {
		return nil, errNoJournal
	}
	kind, err := record.ParseKind(collection)
	if err != nil {
		return nil, err
	}
	rs, err := s.App.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rs) > limit {
		rs = rs[:limit]
	}
	out := make([]RecordDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, toDTO(kind, r))
	}
	return out, nil
}

// RecordByID finds a record in any collection.
func (s *Service) RecordByID(ctx context.Context, id string) (RecordDTO, error) {
	if s.App == nil {
		return RecordDTO{}, errNoJournal
	}
	kind, r, err := s.App.Find(ctx, strings.TrimSpace(id))
	if err != nil {
		return RecordDTO{}, err
	}
	return toDTO(kind, r), nil
}

// WriteEntry saves a journal entry; an empty prompt means free writing.
func (s *Service) WriteEntry(ctx context.Context, title, content, prompt string) (RecordDTO, error) {
	if s.App == nil {
		return RecordDTO{}, errNoJournal
	}
	var p *string
	if prompt = strings.TrimSpace(prompt); prompt != "" {
		p = &prompt
	}
	e, err := s.App.WriteEntry(ctx, title, content, p)
	if err != nil {
		return RecordDTO{}, err
	}
	return toDTO(record.KindEntries, e), nil
}

// Streak reports the current and longest streak of a collection, or of
// the whole journal when collection is empty.
func (s *Service) Streak(ctx context.Context, collection string) (StreakDTO, error) {
	if s.App == nil {
		return StreakDTO{}, errNoJournal
	}
	var kinds []record.Kind
	name := "all"
	if strings.TrimSpace(collection) != "" {
		kind, err := record.ParseKind(collection)
		if err != nil {
			return StreakDTO{}, err
		}
		kinds = []record.Kind{kind}
		name = string(kind)
	}
	rs, err := s.App.Records(ctx, kinds...)
	if err != nil {
		return StreakDTO{}, err
	}
	days, err := s.App.Streak(ctx, kinds...)
	if err != nil {
		return StreakDTO{}, err
	}
	return StreakDTO{Collection: name, Days: days, Longest: record.LongestStreak(rs)}, nil
}

func toDTO(kind record.Kind, r record.Record) RecordDTO {
	dto := RecordDTO{
		ID:          r.RecordID(),
		Collection:  string(kind),
		Title:       record.Title(r),
		Words:       record.Words(r),
		CreatedISO:  record.At(r.Created()).String(),
		CreatedUnix: r.Created().Unix(),
	}
	if b, ok := r.(record.Body); ok {
		dto.Text = b.Text()
	}
	switch v := r.(type) {
	case record.JournalEntry:
		if v.Prompt != nil {
			dto.Prompt = *v.Prompt
		}
	case record.PromptResponse:
		dto.Prompt = v.Prompt
	case record.TimedWriting:
		dto.Duration = v.Duration
		if v.Prompt != nil {
			dto.Prompt = *v.Prompt
		}
	case record.MorningPages:
		dto.Duration = v.Duration
	}
	return dto
}
