// Package report contains the financial aggregation and reporting use cases.
package report

import "time"

// Period represents a named reporting period token.
type Period string

const (
	PeriodAll         Period = "all"
	PeriodWeek        Period = "week"
	PeriodMonth       Period = "month"
	PeriodThreeMonths Period = "3months"
	PeriodYear        Period = "year"
	PeriodCustom      Period = "custom"
)

// Window is a half-open time interval [Start, End) used to filter expenses.
// A nil Start means no lower bound.
type Window struct {
	Start *time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	return t.Before(w.End)
}

// boundLayouts are the accepted formats for explicit window bounds.
var boundLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// parseBound parses an explicit date bound. Malformed or empty values are
// treated as absent so the caller falls back to the slot's default.
func parseBound(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range boundLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ResolveWindow maps a period token plus optional explicit bounds onto a
// concrete half-open window anchored at now.
//
// An empty token behaves as "custom" when any explicit bound is supplied and
// as "all" otherwise, matching the summary query contract where the absence
// of both bounds selects the whole history.
func ResolveWindow(period Period, startRaw, endRaw string, now time.Time) Window {
	now = now.UTC()

	if period == "" {
		if startRaw != "" || endRaw != "" {
			period = PeriodCustom
		} else {
			period = PeriodAll
		}
	}

	switch period {
	case PeriodWeek:
		start := now.AddDate(0, 0, -7)
		return Window{Start: &start, End: now}
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: &start, End: now}
	case PeriodThreeMonths:
		start := time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: &start, End: now}
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: &start, End: now}
	case PeriodCustom:
		window := Window{Start: parseBound(startRaw), End: now}
		if end := parseBound(endRaw); end != nil {
			window.End = *end
		}
		return window
	default:
		// "all" and any unknown token fall back to the unbounded window.
		return Window{Start: nil, End: now}
	}
}
