package practices

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/storyjournal/pkg/record"
)

func TestPractices(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, (&Practices{Out: &buf}).Do(context.Background()))
	for _, k := range record.Kinds() {
		assert.Contains(t, buf.String(), k.Key())
	}
}
