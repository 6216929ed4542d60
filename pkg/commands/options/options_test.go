package options

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/storyjournal/pkg/record"
)

func TestGetMonth(t *testing.T) {
	now := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-02", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-3", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"feb", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"July", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"4", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		o := MonthOptions{Month: tt.in}
		got, err := o.GetMonth(now)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%q: got %v", tt.in, got)
	}

	o := MonthOptions{Month: "smarch"}
	_, err := o.GetMonth(now)
	assert.Error(t, err)
}

func TestCollectionKinds(t *testing.T) {
	o := CollectionOptions{}
	kinds, err := o.Kinds()
	require.NoError(t, err)
	assert.Equal(t, record.Kinds(), kinds)

	o.Collection = "story-journal-homework"
	kinds, err = o.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []record.Kind{record.KindHomework}, kinds)

	o.All = true
	kinds, err = o.Kinds()
	require.NoError(t, err)
	assert.Len(t, kinds, len(record.Kinds()))

	o = CollectionOptions{Collection: "tasks"}
	_, err = o.Kinds()
	assert.Error(t, err)
}

func TestContent(t *testing.T) {
	cmd := &cobra.Command{}
	o := ContentOptions{}

	got, err := o.Content(cmd, []string{"hello", "there"})
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)

	cmd.SetIn(strings.NewReader("from stdin\n"))
	o.File = "-"
	got, err = o.Content(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", got)

	o.File = ""
	_, err = o.Content(cmd, nil)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", Wrap("one   two three", 8))
}
