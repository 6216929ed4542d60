// Package printers renders journal records for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/storyjournal/pkg/record"
)

type PrettyPrint struct {
	ShowID bool
	// Full prints each record's whole text instead of a preview.
	Full  bool
	Width int
	Out   io.Writer
}

const (
	defaultWidth      = 80
	previewLen   uint = 160
)

var spacing = strings.Repeat(" ", len("0190c3a2-7b1e-7c4d-9a51-3f0e2b6d8c11  "))

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return defaultWidth
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Records lists records newest first: date, title, word count, then a
// wrapped preview of the text.
func (pp *PrettyPrint) Records(records ...record.Record) {
	w := pp.out()
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	date := color.New(color.FgCyan)
	title := color.New(color.Bold)
	faint := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, r := range records {
		if pp.ShowID {
			_, _ = y.Fprint(w, r.RecordID())
			if pad := len(spacing) - len(r.RecordID()); pad > 0 {
				_, _ = fmt.Fprint(w, strings.Repeat(" ", pad))
			} else {
				_, _ = fmt.Fprint(w, "  ")
			}
		}
		_, _ = date.Fprint(w, record.FormatShort(r.Created()))
		_, _ = fmt.Fprint(w, "  ")
		_, _ = title.Fprint(w, record.Title(r))
		_, _ = faint.Fprintf(w, "  %s\n", wordsLabel(record.Words(r)))

		if text := pp.preview(r); text != "" {
			_, _ = fmt.Fprintln(w, indent.String(wordwrap.String(text, pp.width()-4), 4))
		}
	}
	_, _ = fmt.Fprintln(w, "")
}

func (pp *PrettyPrint) preview(r record.Record) string {
	b, ok := r.(record.Body)
	if !ok {
		return ""
	}
	text := strings.TrimSpace(b.Text())
	if pp.Full {
		return text
	}
	text = strings.Join(strings.Fields(text), " ")
	if uint(len(text)) > previewLen {
		text = truncate.StringWithTail(text, previewLen, "…")
	}
	return text
}

// Record renders one record as markdown.
func (pp *PrettyPrint) Record(kind record.Kind, r record.Record) error {
	md := Markdown(kind, r)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(pp.width()),
	)
	if err == nil {
		var out string
		if out, err = renderer.Render(md); err == nil {
			_, err = fmt.Fprint(pp.out(), out)
			return err
		}
	}
	_, err = fmt.Fprintln(pp.out(), md)
	return err
}

// Markdown lays a record out as a markdown document.
func Markdown(kind record.Kind, r record.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", record.Title(r))
	fmt.Fprintf(&b, "_%s · %s · %s_\n\n", record.FormatLong(r.Created()), kind, wordsLabel(record.Words(r)))

	switch v := r.(type) {
	case record.JournalEntry:
		if v.Prompt != nil {
			fmt.Fprintf(&b, "> %s\n\n", *v.Prompt)
		}
		b.WriteString(v.Content)
	case record.PromptResponse:
		b.WriteString(v.Content)
	case record.HomeworkEntry:
		if v.Why != "" {
			fmt.Fprintf(&b, "## Why it mattered\n\n%s\n\n", v.Why)
		}
		if v.Story != "" {
			fmt.Fprintf(&b, "## The story\n\n%s\n", v.Story)
		}
	case record.MorningPages:
		fmt.Fprintf(&b, "%d minutes\n\n%s", v.Duration, v.Content)
	case record.TimedWriting:
		fmt.Fprintf(&b, "%d minutes\n\n%s", v.Duration, v.Content)
	case record.StoryReceipt:
		b.WriteString(v.Content)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func wordsLabel(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}
