package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate marks a date selection that does not name a real Gregorian
// calendar date. Callers map it to the bad-input exit code.
var ErrInvalidDate = errors.New("invalid date")

// Window is one validated time bucket to check. Day is zero for a month-wide
// window. Hour is meaningful only when HasHour is set.
type Window struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	HasHour bool
}

// MonthWindow builds a month-granularity window without validation. Use
// Explicit for user-supplied values.
func MonthWindow(year int, month time.Month) Window {
	return Window{Year: year, Month: month}
}

// Explicit validates a user-supplied date selection. A zero day selects the
// whole month. The year must have four digits; invalid combinations (for
// example February 31st) fail with ErrInvalidDate before any filesystem
// access happens.
func Explicit(year int, month, day int) (Window, error) {
	if year < 1000 || year > 9999 {
		return Window{}, fmt.Errorf("%w: year %d is not in CCYY format", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return Window{}, fmt.Errorf("%w: month %d is not in 01-12", ErrInvalidDate, month)
	}
	m := time.Month(month)
	if day == 0 {
		return MonthWindow(year, m), nil
	}
	if day < 1 || day > daysIn(year, m) {
		return Window{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidDate, year, month, day)
	}
	return Window{Year: year, Month: m, Day: day}, nil
}

// PreviousMonth resolves the last full calendar month strictly before now,
// computed by stepping one day back from the first of the current month.
func PreviousMonth(now time.Time) Window {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := firstOfMonth.AddDate(0, 0, -1)
	return MonthWindow(last.Year(), last.Month())
}

// Days expands a month window into one window per day, in calendar order.
// A window that already carries a day expands to itself.
func Days(w Window) []Window {
	if w.Day != 0 {
		return []Window{w}
	}
	count := daysIn(w.Year, w.Month)
	out := make([]Window, 0, count)
	for day := 1; day <= count; day++ {
		out = append(out, Window{Year: w.Year, Month: w.Month, Day: day})
	}
	return out
}

// CurrentMonthDays expands the current month up to and including yesterday.
// On the 1st there are no elapsed days to check, so the result degrades to
// every day of the previous month.
func CurrentMonthDays(now time.Time) []Window {
	if now.Day() == 1 {
		return Days(PreviousMonth(now))
	}
	yesterday := now.AddDate(0, 0, -1)
	out := make([]Window, 0, yesterday.Day())
	for day := 1; day <= yesterday.Day(); day++ {
		out = append(out, Window{Year: now.Year(), Month: now.Month(), Day: day})
	}
	return out
}

// HourMode selects how many hour buckets of the current day are checked.
type HourMode int

const (
	// CurrentHourOnly checks the single bucket now truncates to.
	CurrentHourOnly HourMode = iota
	// AllHoursToday checks buckets 00 through 23.
	AllHoursToday
	// UpToNowToday checks buckets 00 through the current hour, inclusive.
	// At exactly the top of an hour the new bucket is already expected.
	UpToNowToday
)

// Hours resolves hour-granularity windows for the current UTC day.
func Hours(now time.Time, mode HourMode) []Window {
	utc := now.UTC()
	day := Window{Year: utc.Year(), Month: utc.Month(), Day: utc.Day()}

	hourWindow := func(h int) Window {
		w := day
		w.Hour = h
		w.HasHour = true
		return w
	}

	switch mode {
	case AllHoursToday:
		out := make([]Window, 0, 24)
		for h := 0; h < 24; h++ {
			out = append(out, hourWindow(h))
		}
		return out
	case UpToNowToday:
		out := make([]Window, 0, utc.Hour()+1)
		for h := 0; h <= utc.Hour(); h++ {
			out = append(out, hourWindow(h))
		}
		return out
	default:
		return []Window{hourWindow(utc.Hour())}
	}
}

// Today returns the current UTC day as a day window.
func Today(now time.Time) Window {
	utc := now.UTC()
	return Window{Year: utc.Year(), Month: utc.Month(), Day: utc.Day()}
}

// DateStamp renders the zero-padded YYYYMMDD form used in artifact filenames.
func (w Window) DateStamp() string {
	return fmt.Sprintf("%04d%02d%02d", w.Year, int(w.Month), w.Day)
}

// HourStamp renders the zero-padded HH:00:00 bucket marker for hour windows.
func (w Window) HourStamp() string {
	return fmt.Sprintf("%02d:00:00", w.Hour)
}

// String renders a human-readable form for logs and reports.
func (w Window) String() string {
	switch {
	case w.HasHour:
		return fmt.Sprintf("%04d-%02d-%02d %02d:00", w.Year, int(w.Month), w.Day, w.Hour)
	case w.Day != 0:
		return fmt.Sprintf("%04d-%02d-%02d", w.Year, int(w.Month), w.Day)
	default:
		return fmt.Sprintf("%04d-%02d", w.Year, int(w.Month))
	}
}

func daysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
