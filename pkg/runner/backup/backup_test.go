package backup

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/store"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	now := time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)

	src := store.NewMemory()
	svc := &app.Service{Store: src, Now: func() time.Time { return now }}
	_, err := svc.WriteEntry(ctx, "", "one", nil)
	require.NoError(t, err)
	_, err = svc.SaveStoryReceipt(ctx, "two")
	require.NoError(t, err)

	var buf bytes.Buffer
	ex := Export{Store: src, Dir: dir, Now: now, Out: &buf}
	require.NoError(t, ex.Do(ctx))
	path := filepath.Join(dir, "story-journal-backup-2026-04-05.json")
	assert.Contains(t, buf.String(), path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	dst := store.NewMemory()
	buf.Reset()
	im := Import{Store: dst, Path: path, Out: &buf}
	require.NoError(t, im.Do(ctx))
	assert.Equal(t, "Imported 2 new entries.\n", buf.String())

	buf.Reset()
	require.NoError(t, im.Do(ctx))
	assert.Equal(t, msgNothingNew+"\n", buf.String())
}

func TestImportUnreadable(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set("story-journal-entries", []byte(`[]`)))

	im := Import{Store: kv, Path: "-", In: strings.NewReader(`"just a string"`), Out: &bytes.Buffer{}}
	err := im.Do(ctx)
	require.ErrorIs(t, err, ErrUnreadable)
	assert.Equal(t, msgUnreadable, err.Error())

	got, err := kv.Get("story-journal-entries")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	im = Import{Store: kv, Path: filepath.Join(t.TempDir(), "missing.json"), Out: &bytes.Buffer{}}
	assert.ErrorIs(t, im.Do(ctx), ErrUnreadable)
}

func TestExportStdout(t *testing.T) {
	var buf bytes.Buffer
	ex := Export{Store: store.NewMemory(), Kind: "entries", Path: "-", Out: &buf}
	require.NoError(t, ex.Do(context.Background()))
	assert.Equal(t, "[]\n", buf.String())
}
