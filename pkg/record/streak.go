package record

import "time"

// Occupancy is the set of UTC days, as YYYY-MM-DD, holding at least one
// record.
func Occupancy[T Record](records []T) map[string]struct{} {
	days := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.Created().IsZero() {
			continue
		}
		days[DayKey(r.Created())] = struct{}{}
	}
	return days
}

// Streak counts consecutive days with a record, walking back from now's day.
// No record today means no streak.
func Streak[T Record](records []T, now time.Time) int {
	days := Occupancy(records)
	day := startOfDay(now)
	count := 0
	for {
		if _, ok := days[DayKey(day)]; !ok {
			return count
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
}

// LongestStreak is the longest run of consecutive days ever recorded.
func LongestStreak[T Record](records []T) int {
	days := Occupancy(records)
	best := 0
	for key := range days {
		day, err := time.Parse(layoutDay, key)
		if err != nil {
			continue
		}
		// Only count runs from their first day.
		if _, ok := days[DayKey(day.AddDate(0, 0, -1))]; ok {
			continue
		}
		run := 0
		for {
			if _, ok := days[DayKey(day)]; !ok {
				break
			}
			run++
			day = day.AddDate(0, 0, 1)
		}
		if run > best {
			best = run
		}
	}
	return best
}

// MonthOccupancy flags, per day of month's calendar month, whether any
// record falls on it.
func MonthOccupancy[T Record](records []T, month time.Time) []bool {
	first := time.Date(month.UTC().Year(), month.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
	n := DaysIn(first)
	days := Occupancy(records)
	out := make([]bool, n)
	for i := range out {
		_, out[i] = days[DayKey(first.AddDate(0, 0, i))]
	}
	return out
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
