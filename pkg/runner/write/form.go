package write

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"tableflip.dev/storyjournal/pkg/record"
)

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// EntryForm asks for a journal entry's title and text.
func EntryForm(title, content *string, prompt string) *huh.Form {
	text := huh.NewText().
		Title("Entry").
		Value(content).
		Lines(12).
		Validate(required("entry"))
	if prompt != "" {
		text = text.Description(prompt)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder(record.FormatLong(time.Now())).
				Value(title),
			text,
		),
	).WithTheme(huh.ThemeCharm())
}

// ResponseForm asks for an answer to prompt.
func ResponseForm(prompt string, content *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(prompt).
				Value(content).
				Lines(10).
				Validate(required("response")),
		),
	).WithTheme(huh.ThemeCharm())
}

// ReceiptForm asks for a story of at most record.MaxReceiptWords words.
func ReceiptForm(content *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Story receipt").
				Description(fmt.Sprintf("A whole story in %d words or fewer.", record.MaxReceiptWords)).
				Value(content).
				Lines(8).
				Validate(func(s string) error {
					if err := required("story")(s); err != nil {
						return err
					}
					if n := record.WordCount(s); n > record.MaxReceiptWords {
						return fmt.Errorf("%d words, %d over", n, n-record.MaxReceiptWords)
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCharm())
}

// HomeworkForm asks for today's moment, why it mattered and the story.
func HomeworkForm(moment, why, story *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What was today's moment?").
				Value(moment).
				Validate(required("moment")),
			huh.NewText().
				Title("Why did it matter?").
				Value(why).
				Lines(4),
			huh.NewText().
				Title("Tell it as a story").
				Value(story).
				Lines(8),
		),
	).WithTheme(huh.ThemeCharm())
}
