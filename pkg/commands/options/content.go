package options

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ErrNoContent is returned when nothing was given to write.
var ErrNoContent = errors.New("nothing to write: pass text as arguments, --file, or pipe it on stdin")

// ContentOptions selects where a command's text comes from.
type ContentOptions struct {
	Title string
	File  string
}

func AddContentArgs(cmd *cobra.Command, o *ContentOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		`Read the text from a file, "-" for stdin.`)
}

func AddTitleArgs(cmd *cobra.Command, o *ContentOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the entry, defaults to today's date.")
}

// Content returns the text to save: the joined args, then --file, then
// stdin when it is not a terminal.
func (o *ContentOptions) Content(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	switch o.File {
	case "":
	case "-":
		return readAll(cmd.InOrStdin())
	default:
		b, err := os.ReadFile(o.File)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", o.File, err)
		}
		return string(b), nil
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return readAll(f)
	}
	return "", ErrNoContent
}

// Piped reports whether stdin is redirected.
func Piped(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
