// Time-windowed order analytics. Everything in this package is pure:
// callers load the order subset, this package only counts and sums.
package analytics

import (
	"time"

	"github.com/sachin6736/crmproject-sub002/models"
)

// Standard window names. Selected windows appear in output only when the
// caller asked for them; consumers can tell "not requested" from "zero".
const (
	WindowToday         = "today"
	WindowCurrentMonth  = "currentMonth"
	WindowPreviousMonth = "previousMonth"
	WindowCurrentYear   = "currentYear"
	WindowSelectedMonth = "selectedMonth"
	WindowSelectedYear  = "selectedYear"
)

// Window is a named half-open range [Start, End).
type Window struct {
	Name  string
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Windows builds the reporting windows around now in the given timezone.
// selectedMonth ("YYYY-MM") and selectedYear ("YYYY") are optional; a
// malformed value is a ValidationError.
func Windows(now time.Time, loc *time.Location, selectedMonth, selectedYear string) ([]Window, error) {
	now = now.In(loc)
	year, month, day := now.Date()

	dayStart := time.Date(year, month, day, 0, 0, 0, 0, loc)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)

	windows := []Window{
		{Name: WindowToday, Start: dayStart, End: dayStart.AddDate(0, 0, 1)},
		{Name: WindowCurrentMonth, Start: monthStart, End: monthStart.AddDate(0, 1, 0)},
		{Name: WindowPreviousMonth, Start: monthStart.AddDate(0, -1, 0), End: monthStart},
		{Name: WindowCurrentYear, Start: yearStart, End: yearStart.AddDate(1, 0, 0)},
	}

	if selectedMonth != "" {
		start, err := time.ParseInLocation("2006-01", selectedMonth, loc)
		if err != nil {
			return nil, &models.ValidationError{Field: "selectedMonth", Reason: "expected YYYY-MM"}
		}
		windows = append(windows, Window{Name: WindowSelectedMonth, Start: start, End: start.AddDate(0, 1, 0)})
	}

	if selectedYear != "" {
		start, err := time.ParseInLocation("2006", selectedYear, loc)
		if err != nil {
			return nil, &models.ValidationError{Field: "selectedYear", Reason: "expected YYYY"}
		}
		windows = append(windows, Window{Name: WindowSelectedYear, Start: start, End: start.AddDate(1, 0, 0)})
	}

	return windows, nil
}

// Span returns the earliest start and latest end across windows, letting
// callers bound the store query to one range instead of a full scan.
func Span(windows []Window) (time.Time, time.Time) {
	if len(windows) == 0 {
		return time.Time{}, time.Time{}
	}
	start, end := windows[0].Start, windows[0].End
	for _, w := range windows[1:] {
		if w.Start.Before(start) {
			start = w.Start
		}
		if w.End.After(end) {
			end = w.End
		}
	}
	return start, end
}
