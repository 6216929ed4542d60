// Package write provides runners that save a record to one of the
// journal's practices and print it back.
package write

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/fatih/color"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/printers"
	"tableflip.dev/storyjournal/pkg/prompts"
	"tableflip.dev/storyjournal/pkg/record"
)

var errNoService = errors.New("can not write, no journal")

// Write saves a free or prompted journal entry.
type Write struct {
	Service *app.Service
	Title   string
	Content string
	Prompt  string

	Interactive bool
	Out         io.Writer
}

func (n *Write) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if n.Interactive {
		if err := EntryForm(&n.Title, &n.Content, n.Prompt).Run(); err != nil {
			return err
		}
	}
	var prompt *string
	if n.Prompt != "" {
		prompt = &n.Prompt
	}
	e, err := n.Service.WriteEntry(ctx, n.Title, n.Content, prompt)
	if err != nil {
		return err
	}
	return saved(n.Out, record.KindEntries, e)
}

// Prompt prints a prompt from the deck.
type Prompt struct {
	Exclude string
	All     bool
	Rand    *rand.Rand
	Out     io.Writer
}

func (n *Prompt) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: n.Out}
	if n.All {
		for _, p := range prompts.All() {
			_, _ = fmt.Fprintf(out(n.Out), "%s\n", p)
		}
		return nil
	}
	pp.Title(prompts.Random(n.Exclude, n.Rand))
	return nil
}

// Respond answers a prompt, picking one from the deck when none is given.
type Respond struct {
	Service *app.Service
	Prompt  string
	Content string

	Interactive bool
	Rand        *rand.Rand
	Out         io.Writer
}

func (n *Respond) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if n.Prompt == "" {
		n.Prompt = prompts.Random("", n.Rand)
	}
	if n.Interactive {
		if err := ResponseForm(n.Prompt, &n.Content).Run(); err != nil {
			return err
		}
	}
	r, err := n.Service.SavePromptResponse(ctx, n.Prompt, n.Content)
	if err != nil {
		return err
	}
	return saved(n.Out, record.KindPromptResponses, r)
}

// Receipt saves a story receipt.
type Receipt struct {
	Service *app.Service
	Content string

	Interactive bool
	Out         io.Writer
}

func (n *Receipt) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if n.Interactive {
		if err := ReceiptForm(&n.Content).Run(); err != nil {
			return err
		}
	}
	r, err := n.Service.SaveStoryReceipt(ctx, n.Content)
	if err != nil {
		return err
	}
	return saved(n.Out, record.KindStoryReceipts, r)
}

// Homework saves today's homework-for-life entry, or shows it when Show is
// set.
type Homework struct {
	Service *app.Service
	Moment  string
	Why     string
	Story   string
	Show    bool

	Interactive bool
	Out         io.Writer
}

func (n *Homework) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	existing, found, err := n.Service.HomeworkToday(ctx)
	if err != nil {
		return err
	}
	if n.Show {
		if !found {
			_, _ = fmt.Fprintln(out(n.Out), "Nothing recorded for today yet.")
			return nil
		}
		pp := printers.PrettyPrint{Out: n.Out}
		return pp.Record(record.KindHomework, existing)
	}
	if n.Interactive {
		if found && n.Moment == "" {
			n.Moment, n.Why, n.Story = existing.Moment, existing.Why, existing.Story
		}
		if err := HomeworkForm(&n.Moment, &n.Why, &n.Story).Run(); err != nil {
			return err
		}
	}
	h, err := n.Service.SaveHomework(ctx, n.Moment, n.Why, n.Story)
	if err != nil {
		return err
	}
	if found {
		_, _ = fmt.Fprintln(out(n.Out), "Replaced today's entry.")
	}
	return saved(n.Out, record.KindHomework, h)
}

func saved(w io.Writer, kind record.Kind, r record.Record) error {
	pp := printers.PrettyPrint{ShowID: true, Out: w}
	pp.NewLine()
	pp.TitleWithCount(kind.Description(), 1)
	pp.Records(r)
	return nil
}

func out(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return color.Output
}
