package remove

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := &app.Service{Store: store.NewMemory()}
	r, err := svc.SaveStoryReceipt(ctx, "keep or not")
	require.NoError(t, err)

	var asked string
	no := func(label string) (bool, error) {
		asked = label
		return false, nil
	}
	n := Remove{ID: r.ID, Service: svc, Confirm: no, Out: &bytes.Buffer{}}
	assert.ErrorIs(t, n.Do(ctx), ErrAborted)
	assert.Contains(t, asked, "storyReceipts")

	_, _, err = svc.Find(ctx, r.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	n = Remove{ID: r.ID, Yes: true, Service: svc, Out: &buf}
	require.NoError(t, n.Do(ctx))
	assert.Contains(t, buf.String(), "Deleted")

	_, _, err = svc.Find(ctx, r.ID)
	assert.ErrorIs(t, err, app.ErrNotFound)
}
