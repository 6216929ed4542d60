// Package backup provides the export and import runners.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/storyjournal/pkg/backup"
	"tableflip.dev/storyjournal/pkg/logger"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

const (
	msgUnreadable = "Could not read that file. Make sure it's a Story Journal backup."
	msgNothingNew = "No new entries found — everything was already here."
)

var errNoStore = errors.New("no journal store")

// Export writes a backup document. Path "-" writes to Out; an empty Path
// writes backup.FileName(now) into Dir.
type Export struct {
	Store store.KV
	// Kind, when set, exports that collection alone as a bare array.
	Kind record.Kind
	Path string
	Dir  string
	Now  time.Time
	Out  io.Writer
}

func (n *Export) Do(_ context.Context) error {
	if n.Store == nil {
		return errNoStore
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	w := out(n.Out)

	var data []byte
	var err error
	if n.Kind != "" {
		data, err = backup.ExportCollection(n.Store, n.Kind)
	} else {
		data, err = backup.Export(n.Store, now)
	}
	if err != nil {
		return err
	}

	if n.Path == "-" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	path := n.Path
	if path == "" {
		path = filepath.Join(n.Dir, backup.FileName(now))
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	logger.Info("exported backup", "path", path, "bytes", len(data))
	_, _ = fmt.Fprintf(w, "Saved backup to %s\n", path)
	return nil
}

// Import merges a backup file, or In when Path is "-", into the store.
type Import struct {
	Store store.KV
	Path  string
	In    io.Reader
	Out   io.Writer
}

// ErrUnreadable is the user-facing import failure.
var ErrUnreadable = errors.New(msgUnreadable)

func (n *Import) Do(_ context.Context) error {
	if n.Store == nil {
		return errNoStore
	}
	w := out(n.Out)

	var data []byte
	var err error
	if n.Path == "-" || n.Path == "" {
		if n.In == nil {
			return ErrUnreadable
		}
		data, err = io.ReadAll(n.In)
	} else {
		data, err = os.ReadFile(n.Path)
	}
	if err != nil {
		logger.Warn("import: read failed", "path", n.Path, "error", err)
		return ErrUnreadable
	}

	res, err := backup.Import(n.Store, data)
	if err != nil {
		if errors.Is(err, backup.ErrUnreadable) {
			logger.Warn("import: rejected", "path", n.Path, "error", err)
			return ErrUnreadable
		}
		return err
	}
	for _, name := range res.Skipped {
		_, _ = fmt.Fprintf(w, "Skipped %q, not a journal collection.\n", name)
	}
	switch res.Added {
	case 0:
		_, _ = fmt.Fprintln(w, msgNothingNew)
	case 1:
		_, _ = fmt.Fprintln(w, "Imported 1 new entry.")
	default:
		_, _ = fmt.Fprintf(w, "Imported %d new entries.\n", res.Added)
	}
	return nil
}

func out(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return color.Output
}
