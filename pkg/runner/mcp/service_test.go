package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

func newTestService(t *testing.T) (*Service, *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 14, 10, 0, 0, 0, time.UTC)
	svc := &app.Service{Store: store.NewMemory(), Now: func() time.Time { return now }}
	return NewService(svc), &now
}

func TestWriteAndListRecords(t *testing.T) {
	ctx := context.Background()
	svc, now := newTestService(t)

	first, err := svc.WriteEntry(ctx, "", "morning walk", "")
	require.NoError(t, err)
	assert.Equal(t, "entries", first.Collection)
	assert.Empty(t, first.Prompt)
	assert.Equal(t, 2, first.Words)
	assert.Equal(t, "2026-08-14T10:00:00.000Z", first.CreatedISO)

	*now = now.Add(time.Hour)
	second, err := svc.WriteEntry(ctx, "Prompted", "an answer", " What changed? ")
	require.NoError(t, err)
	assert.Equal(t, "What changed?", second.Prompt)

	records, err := svc.ListRecords(ctx, "entries", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)

	limited, err := svc.ListRecords(ctx, "story-journal-entries", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = svc.ListRecords(ctx, "tasks", 0)
	assert.Error(t, err)

	_, err = svc.WriteEntry(ctx, "", "  ", "")
	assert.ErrorIs(t, err, app.ErrInvalid)
}

func TestRecordByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	m, err := svc.App.SaveMorningPages(ctx, "pages and pages", 20)
	require.NoError(t, err)

	dto, err := svc.RecordByID(ctx, " "+m.ID+" ")
	require.NoError(t, err)
	assert.Equal(t, "morningPages", dto.Collection)
	assert.Equal(t, 20, dto.Duration)
	assert.Equal(t, "pages and pages", dto.Text)

	_, err = svc.RecordByID(ctx, "nope")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestListCollectionsAndStreak(t *testing.T) {
	ctx := context.Background()
	svc, now := newTestService(t)

	for i := 0; i < 2; i++ {
		_, err := svc.App.SaveStoryReceipt(ctx, "small story")
		require.NoError(t, err)
		*now = now.AddDate(0, 0, 1)
	}
	*now = now.AddDate(0, 0, -1)

	summaries, err := svc.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, len(record.Kinds()))
	receipts := summaries[4]
	assert.Equal(t, "storyReceipts", receipts.Name)
	assert.Equal(t, record.KindStoryReceipts.Key(), receipts.Key)
	assert.Equal(t, 2, receipts.Count)
	assert.Equal(t, 4, receipts.Words)
	assert.Equal(t, 2, receipts.Streak)
	assert.NotEmpty(t, receipts.LastUpdated)
	assert.Empty(t, summaries[0].LastUpdated)

	all, err := svc.Streak(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, StreakDTO{Collection: "all", Days: 2, Longest: 2}, all)

	entries, err := svc.Streak(ctx, "entry")
	require.NoError(t, err)
	assert.Equal(t, StreakDTO{Collection: "entries"}, entries)

	_, err = svc.Streak(ctx, "tasks")
	assert.Error(t, err)
}

func TestNoJournal(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.ListCollections(context.Background())
	assert.Error(t, err)
	assert.NotNil(t, NewServer(&app.Service{Store: store.NewMemory()}, "", ""))
}
