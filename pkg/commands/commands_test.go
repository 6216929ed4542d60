package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCommands(t *testing.T) {
	root := New()
	for _, name := range []string{
		"write", "list", "show", "delete", "prompt", "respond", "morning", "sprint",
		"homework", "receipt", "streak", "calendar", "stats", "export", "import",
		"watch", "info", "practices", "mcp", "version", "completion", "upgrade",
	} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestAliases(t *testing.T) {
	root := New()
	for alias, name := range map[string]string{
		"ls":    "list",
		"rm":    "delete",
		"hfl":   "homework",
		"cal":   "calendar",
		"pages": "morning",
		"timed": "sprint",
		"key":   "practices",
	} {
		sub, _, err := root.Find([]string{alias})
		require.NoError(t, err, alias)
		assert.Equal(t, name, sub.Name())
	}
}

func TestPickableCommandsExist(t *testing.T) {
	root := New()
	for _, name := range pickable {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotNil(t, sub.RunE, name)
	}
}

func TestVersion(t *testing.T) {
	root := New()
	var out bytes.Buffer
	cmd, _, err := root.Find([]string{"version"})
	require.NoError(t, err)
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)
	assert.Contains(t, out.String(), "dev")
}
