package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/record"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints month as a grid, with days that have a record in bold and
// today underlined.
func (pp *PrettyPrint) Calendar(month time.Time, written []bool, today time.Time) {
	w := pp.out()
	then := time.Date(month.UTC().Year(), month.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = fmt.Fprintln(w, "Su Mo Tu We Th Fr Sa")

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiGreen)

	days := record.DaysIn(then)
	todayKey := record.DayKey(today)
	for i := 0; i < days; i++ {
		on := i < len(written) && written[i]
		p := l1
		if on {
			p = l2
		}
		if record.DayKey(then.AddDate(0, 0, i)) == todayKey {
			p = color.New(color.Underline)
			if on {
				p.Add(color.Bold, color.FgHiGreen)
			}
			_, _ = p.Fprintf(w, "%2d", i+1)
			_, _ = fmt.Fprint(w, " ")
		} else {
			_, _ = p.Fprintf(w, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}

// Streak prints the current run of consecutive days.
func (pp *PrettyPrint) Streak(label string, days int) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	switch days {
	case 0:
		_, _ = f.Fprintf(pp.out(), "%s: no streak yet, write something today.\n", label)
	case 1:
		_, _ = fmt.Fprintf(pp.out(), "%s: ", label)
		_, _ = b.Fprintln(pp.out(), "1 day")
	default:
		_, _ = fmt.Fprintf(pp.out(), "%s: ", label)
		_, _ = b.Fprintf(pp.out(), "%d days\n", days)
	}
}

// Stats prints a per-collection summary table.
func (pp *PrettyPrint) Stats(st app.Stats) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Collection"), bold.Sprint("Count"), bold.Sprint("Words"),
		bold.Sprint("Streak"), bold.Sprint("Longest"), bold.Sprint("Last"))
	for _, cs := range st.Collections {
		tbl.AddRow(string(cs.Kind), cs.Count, cs.Words, cs.Streak, cs.Longest, lastLabel(cs.Last))
	}
	t := st.Total
	tbl.AddRow(bold.Sprint("total"), t.Count, t.Words, t.Streak, t.Longest, lastLabel(t.Last))
	for i := 1; i <= 4; i++ {
		tbl.RightAlign(i)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintf(pp.out(), "\n%d days written\n", st.Days)
}

// Practices prints each collection with its store key and purpose.
func (pp *PrettyPrint) Practices(kinds ...record.Kind) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Collection"), bold.Sprint("Practice"), bold.Sprint("Key"))
	for _, k := range kinds {
		tbl.AddRow(string(k), k.Description(), faint.Sprint(k.Key()))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func lastLabel(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return record.FormatShort(t)
}

// StartDay is the weekday then's month begins on.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
