package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

func Wrap80(text string) string {
	return Wrap(text, 80)
}

func Wrap(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	return wordwrap.String(text, width)
}
