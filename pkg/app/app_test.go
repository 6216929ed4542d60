package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (*Service, *clock, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	c := &clock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	n := 0
	svc := &Service{
		Store: kv,
		Now:   c.Now,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
	return svc, c, kv
}

func TestWriteEntry(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newTestService(t)

	first, err := svc.WriteEntry(ctx, "", "  first thoughts  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "first thoughts", first.Content)
	assert.Equal(t, record.FormatLong(c.now), first.Title)
	assert.Nil(t, first.Prompt)

	c.advance(time.Minute)
	prompt := "What did you notice?"
	second, err := svc.WriteEntry(ctx, "Noticing", "the light", &prompt)
	require.NoError(t, err)

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	got, err := svc.Entry(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Prompt)
	assert.Equal(t, prompt, *got.Prompt)
}

func TestWriteEntryRejectsBlank(t *testing.T) {
	ctx := context.Background()
	svc, _, kv := newTestService(t)

	_, err := svc.WriteEntry(ctx, "title", "   \n\t", nil)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, kv.Keys())
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	e, err := svc.WriteEntry(ctx, "", "gone soon", nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(ctx, e.ID))

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, svc.DeleteEntry(ctx, e.ID), ErrNotFound)
	_, err = svc.Entry(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveHomeworkOnePerDay(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newTestService(t)

	_, err := svc.SaveHomework(ctx, "coffee with Sam", "", "")
	require.NoError(t, err)
	c.advance(-24 * time.Hour)
	yesterday, err := svc.SaveHomework(ctx, "the bus was late", "", "")
	require.NoError(t, err)
	c.advance(24*time.Hour + 3*time.Hour)
	replaced, err := svc.SaveHomework(ctx, "the dog learned to sit", "patience pays", "")
	require.NoError(t, err)

	rs, err := svc.List(ctx, record.KindHomework)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, replaced.ID, rs[0].RecordID())
	assert.Equal(t, yesterday.ID, rs[1].RecordID())

	today, ok, err := svc.HomeworkToday(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "patience pays", today.Why)
}

func TestSaveStoryReceiptWordLimit(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	exact := strings.TrimSpace(strings.Repeat("word ", record.MaxReceiptWords))
	r, err := svc.SaveStoryReceipt(ctx, exact)
	require.NoError(t, err)
	assert.Equal(t, record.MaxReceiptWords, r.WordCount)

	_, err = svc.SaveStoryReceipt(ctx, exact+" more")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "101")

	rs, err := svc.List(ctx, record.KindStoryReceipts)
	require.NoError(t, err)
	assert.Len(t, rs, 1)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	m, err := svc.SaveMorningPages(ctx, "one two three", 20)
	require.NoError(t, err)
	assert.Equal(t, 3, m.WordCount)
	assert.Equal(t, 20, m.Duration)

	_, err = svc.SaveMorningPages(ctx, "text", 0)
	assert.ErrorIs(t, err, ErrInvalid)

	prompt := "Describe a door."
	tw, err := svc.SaveTimedWriting(ctx, "red and heavy", 10, &prompt)
	require.NoError(t, err)
	assert.Equal(t, 3, tw.WordCount)

	_, err = svc.SavePromptResponse(ctx, "", "answer")
	assert.ErrorIs(t, err, ErrInvalid)
	pr, err := svc.SavePromptResponse(ctx, prompt, "answer")
	require.NoError(t, err)

	kind, found, err := svc.Find(ctx, pr.ID)
	require.NoError(t, err)
	assert.Equal(t, record.KindPromptResponses, kind)
	assert.Equal(t, "answer", found.(record.PromptResponse).Content)

	all, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStreakAndCalendar(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.SaveStoryReceipt(ctx, "a small thing")
		require.NoError(t, err)
		c.advance(24 * time.Hour)
	}
	// Nothing written today yet.
	n, err := svc.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = svc.WriteEntry(ctx, "", "back again", nil)
	require.NoError(t, err)
	n, err = svc.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = svc.Streak(ctx, record.KindEntries)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	days, err := svc.Calendar(ctx, c.now)
	require.NoError(t, err)
	require.Len(t, days, 31)
	for i, want := range days {
		assert.Equal(t, i >= 9 && i <= 12, want, "day %d", i+1)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newTestService(t)

	_, err := svc.WriteEntry(ctx, "", "one two", nil)
	require.NoError(t, err)
	c.advance(time.Hour)
	_, err = svc.SaveStoryReceipt(ctx, "three four five")
	require.NoError(t, err)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, st.Collections, len(record.Kinds()))
	assert.Equal(t, 2, st.Total.Count)
	assert.Equal(t, 5, st.Total.Words)
	assert.Equal(t, 1, st.Total.Streak)
	assert.Equal(t, 1, st.Days)
	assert.True(t, st.Total.Last.Equal(c.now))
	assert.Equal(t, record.KindEntries, st.Collections[0].Kind)
	assert.Equal(t, 1, st.Collections[0].Count)
}

func TestNoStore(t *testing.T) {
	var svc Service
	_, err := svc.WriteEntry(context.Background(), "", "x", nil)
	assert.Error(t, err)
	_, err = svc.List(context.Background(), record.KindEntries)
	assert.Error(t, err)
}
