package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/sachin6736/crmproject-sub002/models"
)

func findWindow(t *testing.T, windows []Window, name string) Window {
	t.Helper()
	for _, w := range windows {
		if w.Name == name {
			return w
		}
	}
	t.Fatalf("window %q not found", name)
	return Window{}
}

func TestWindowsStandardSet(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.March, 15, 13, 45, 0, 0, loc)

	windows, err := Windows(now, loc, "", "")
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}
	if len(windows) != 4 {
		t.Fatalf("expected 4 standard windows, got %d", len(windows))
	}

	today := findWindow(t, windows, WindowToday)
	if !today.Start.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, loc)) ||
		!today.End.Equal(time.Date(2026, 3, 16, 0, 0, 0, 0, loc)) {
		t.Errorf("today window wrong: %v - %v", today.Start, today.End)
	}

	prev := findWindow(t, windows, WindowPreviousMonth)
	if !prev.Start.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, loc)) ||
		!prev.End.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("previousMonth window wrong: %v - %v", prev.Start, prev.End)
	}

	year := findWindow(t, windows, WindowCurrentYear)
	if !year.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, loc)) ||
		!year.End.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("currentYear window wrong: %v - %v", year.Start, year.End)
	}
}

func TestWindowsJanuaryPreviousMonth(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.January, 2, 8, 0, 0, 0, loc)

	windows, err := Windows(now, loc, "", "")
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}

	prev := findWindow(t, windows, WindowPreviousMonth)
	if !prev.Start.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("previous month from January should be December of prior year, got %v", prev.Start)
	}
}

func TestWindowsTimezoneBoundary(t *testing.T) {
	// 01:30 UTC on March 2nd is still March 1st in a UTC-5 zone; the
	// "today" window must follow the configured zone, not UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, time.March, 2, 1, 30, 0, 0, time.UTC)

	windows, err := Windows(now, loc, "", "")
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}

	today := findWindow(t, windows, WindowToday)
	if !today.Start.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("today in UTC-5 should start March 1st, got %v", today.Start)
	}
	if !today.Contains(now) {
		t.Error("the evaluation instant must fall inside its own today window")
	}
}

func TestWindowsSelectedPeriods(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.June, 10, 0, 0, 0, 0, loc)

	windows, err := Windows(now, loc, "2025-11", "2024")
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}
	if len(windows) != 6 {
		t.Fatalf("expected 6 windows with selected periods, got %d", len(windows))
	}

	sm := findWindow(t, windows, WindowSelectedMonth)
	if !sm.Start.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, loc)) ||
		!sm.End.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("selectedMonth window wrong: %v - %v", sm.Start, sm.End)
	}

	sy := findWindow(t, windows, WindowSelectedYear)
	if !sy.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, loc)) ||
		!sy.End.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("selectedYear window wrong: %v - %v", sy.Start, sy.End)
	}

	// Absent selections stay absent: no zero-filled windows.
	windows, err = Windows(now, loc, "", "")
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}
	for _, w := range windows {
		if w.Name == WindowSelectedMonth || w.Name == WindowSelectedYear {
			t.Errorf("unexpected %s window without a selection", w.Name)
		}
	}
}

func TestWindowsMalformedSelection(t *testing.T) {
	loc := time.UTC
	now := time.Now()

	var ve *models.ValidationError
	if _, err := Windows(now, loc, "November", ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad selectedMonth, got %v", err)
	}
	if _, err := Windows(now, loc, "", "24"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad selectedYear, got %v", err)
	}
}

func TestWindowContainsHalfOpen(t *testing.T) {
	loc := time.UTC
	w := Window{
		Name:  WindowToday,
		Start: time.Date(2026, 3, 15, 0, 0, 0, 0, loc),
		End:   time.Date(2026, 3, 16, 0, 0, 0, 0, loc),
	}
	if !w.Contains(w.Start) {
		t.Error("window start must be inclusive")
	}
	if w.Contains(w.End) {
		t.Error("window end must be exclusive")
	}
}

func TestSpan(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.June, 10, 12, 0, 0, 0, loc)
	windows, err := Windows(now, loc, "", "2024")
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}

	start, end := Span(windows)
	if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("span start = %v, want selected year start", start)
	}
	if !end.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("span end = %v, want current year end", end)
	}
}
