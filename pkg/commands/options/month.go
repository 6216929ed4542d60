package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// MonthOptions
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Specify a month, example: --month="2026-02" or --month="feb".`)
}

// GetMonth returns the first day (UTC) of the selected month, defaulting to
// now's month. A bare month name means that month of now's year.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(o.Month)
	now = now.UTC()
	if raw == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range []string{"2006-01", "2006-1", "January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	raw = strings.ToUpper(raw[:1]) + strings.ToLower(raw[1:])
	for _, layout := range []string{"1", "January", "Jan"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(now.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized month %q, example: 2026-02", o.Month)
}
