package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersAreSafeWithoutInit(t *testing.T) {
	Use(nil)
	Debug("debug")
	Info("info")
	Warn("warn", "k", "v")
	Error("error")
}

func TestUseCapturesOutput(t *testing.T) {
	var buf bytes.Buffer
	Use(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	t.Cleanup(func() { Use(nil) })

	Warn("corrupt collection", "key", "story-journal-entries")
	assert.Contains(t, buf.String(), "corrupt collection")
	assert.Contains(t, buf.String(), "story-journal-entries")
}

func TestInitCreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(Config{LogDir: dir}))
	t.Cleanup(func() { Use(nil) })

	Warn("hello")
	_, err := os.Stat(filepath.Join(dir, "storyjournal.log"))
	assert.NoError(t, err)
}
