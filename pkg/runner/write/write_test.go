package write

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/prompts"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

func init() {
	color.NoColor = true
}

func newService() *app.Service {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	return &app.Service{Store: store.NewMemory(), Now: func() time.Time { return now }}
}

func TestWrite(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	var buf bytes.Buffer

	w := Write{Service: svc, Title: "Rain", Content: "it rained all day", Out: &buf}
	require.NoError(t, w.Do(ctx))
	assert.Contains(t, buf.String(), "Rain")
	assert.Contains(t, buf.String(), "4 words")

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Prompt)
}

func TestRespondPicksPrompt(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	r := Respond{Service: svc, Content: "an answer", Rand: rand.New(rand.NewSource(1)), Out: &bytes.Buffer{}}
	require.NoError(t, r.Do(ctx))

	rs, err := svc.List(ctx, record.KindPromptResponses)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Contains(t, prompts.All(), rs[0].(record.PromptResponse).Prompt)
}

func TestReceiptTooLong(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	r := Receipt{Service: svc, Content: strings.Repeat("w ", record.MaxReceiptWords+1), Out: &bytes.Buffer{}}
	err := r.Do(ctx)
	require.ErrorIs(t, err, app.ErrInvalid)

	rs, err := svc.List(ctx, record.KindStoryReceipts)
	require.NoError(t, err)
	assert.Empty(t, rs)
}

func TestHomework(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	var buf bytes.Buffer

	show := Homework{Service: svc, Show: true, Out: &buf}
	require.NoError(t, show.Do(ctx))
	assert.Contains(t, buf.String(), "Nothing recorded for today yet.")

	buf.Reset()
	h := Homework{Service: svc, Moment: "first", Out: &buf}
	require.NoError(t, h.Do(ctx))
	assert.NotContains(t, buf.String(), "Replaced")

	buf.Reset()
	h = Homework{Service: svc, Moment: "second", Out: &buf}
	require.NoError(t, h.Do(ctx))
	assert.Contains(t, buf.String(), "Replaced today's entry.")

	rs, err := svc.List(ctx, record.KindHomework)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "second", rs[0].(record.HomeworkEntry).Moment)
}

func TestPromptAll(t *testing.T) {
	var buf bytes.Buffer
	p := Prompt{All: true, Out: &buf}
	require.NoError(t, p.Do(context.Background()))
	assert.Equal(t, len(prompts.All()), strings.Count(buf.String(), "\n"))
}

func TestNoService(t *testing.T) {
	assert.Error(t, (&Write{Content: "x"}).Do(context.Background()))
}
