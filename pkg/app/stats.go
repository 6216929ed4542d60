package app

import (
	"context"
	"time"

	"tableflip.dev/storyjournal/pkg/record"
)

// Streak counts consecutive UTC days, ending today, with at least one record
// in the given collections (all of them when kinds is empty).
func (s *Service) Streak(ctx context.Context, kinds ...record.Kind) (int, error) {
	rs, err := s.Records(ctx, kinds...)
	if err != nil {
		return 0, err
	}
	return record.Streak(rs, s.now()), nil
}

// Calendar flags, for each day of month, whether anything was written.
func (s *Service) Calendar(ctx context.Context, month time.Time, kinds ...record.Kind) ([]bool, error) {
	rs, err := s.Records(ctx, kinds...)
	if err != nil {
		return nil, err
	}
	return record.MonthOccupancy(rs, month), nil
}

// CollectionStats summarizes one collection.
type CollectionStats struct {
	Kind    record.Kind
	Count   int
	Words   int
	Streak  int
	Longest int
	Last    time.Time
}

// Stats summarizes the practice history of the journal.
type Stats struct {
	Collections []CollectionStats
	Total       CollectionStats
	Days        int
}

// Stats walks every collection and totals counts, words and streaks.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	var all []record.Record
	now := s.now()
	for _, k := range record.Kinds() {
		rs, err := s.List(ctx, k)
		if err != nil {
			return Stats{}, err
		}
		cs := summarize(rs, now)
		cs.Kind = k
		out.Collections = append(out.Collections, cs)
		all = append(all, rs...)
	}
	out.Total = summarize(all, now)
	out.Days = len(record.Occupancy(all))
	return out, nil
}

func summarize(rs []record.Record, now time.Time) CollectionStats {
	cs := CollectionStats{
		Count:   len(rs),
		Streak:  record.Streak(rs, now),
		Longest: record.LongestStreak(rs),
	}
	for _, r := range rs {
		cs.Words += record.Words(r)
		if r.Created().After(cs.Last) {
			cs.Last = r.Created()
		}
	}
	return cs
}
