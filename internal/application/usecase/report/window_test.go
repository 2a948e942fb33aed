package report

import (
	"testing"
	"time"
)

func TestResolveWindow_Periods(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		period        Period
		startRaw      string
		endRaw        string
		expectedStart *time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "all is unbounded below",
			period:        PeriodAll,
			expectedStart: nil,
			expectedEnd:   now,
		},
		{
			name:          "week is the last seven days",
			period:        PeriodWeek,
			expectedStart: timePtr(time.Date(2024, 3, 8, 10, 30, 0, 0, time.UTC)),
			expectedEnd:   now,
		},
		{
			name:          "month starts on the first at midnight",
			period:        PeriodMonth,
			expectedStart: timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			expectedEnd:   now,
		},
		{
			name:          "3months starts three calendar months back",
			period:        PeriodThreeMonths,
			expectedStart: timePtr(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
			expectedEnd:   now,
		},
		{
			name:          "year starts on january first",
			period:        PeriodYear,
			expectedStart: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			expectedEnd:   now,
		},
		{
			name:          "custom with both bounds",
			period:        PeriodCustom,
			startRaw:      "2024-01-10",
			endRaw:        "2024-02-20",
			expectedStart: timePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
			expectedEnd:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "custom accepts RFC3339 bounds",
			period:        PeriodCustom,
			startRaw:      "2024-01-10T08:00:00Z",
			expectedStart: timePtr(time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)),
			expectedEnd:   now,
		},
		{
			name:          "custom without bounds",
			period:        PeriodCustom,
			expectedStart: nil,
			expectedEnd:   now,
		},
		{
			name:          "malformed start falls back to absent",
			period:        PeriodCustom,
			startRaw:      "not-a-date",
			endRaw:        "2024-02-20",
			expectedStart: nil,
			expectedEnd:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "malformed end falls back to now",
			period:        PeriodCustom,
			startRaw:      "2024-01-10",
			endRaw:        "20/02/2024",
			expectedStart: timePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
			expectedEnd:   now,
		},
		{
			name:          "empty token with bounds behaves as custom",
			period:        "",
			startRaw:      "2024-01-10",
			expectedStart: timePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
			expectedEnd:   now,
		},
		{
			name:          "empty token without bounds behaves as all",
			period:        "",
			expectedStart: nil,
			expectedEnd:   now,
		},
		{
			name:          "unknown token behaves as all",
			period:        "fortnight",
			expectedStart: nil,
			expectedEnd:   now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ResolveWindow(tt.period, tt.startRaw, tt.endRaw, now)

			if tt.expectedStart == nil {
				if window.Start != nil {
					t.Errorf("expected nil start, got %v", window.Start)
				}
			} else {
				if window.Start == nil {
					t.Fatalf("expected start %v, got nil", tt.expectedStart)
				}
				if !window.Start.Equal(*tt.expectedStart) {
					t.Errorf("expected start %v, got %v", tt.expectedStart, window.Start)
				}
			}

			if !window.End.Equal(tt.expectedEnd) {
				t.Errorf("expected end %v, got %v", tt.expectedEnd, window.End)
			}
		})
	}
}

func TestWindow_Contains_HalfOpen(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	window := Window{Start: &start, End: end}

	if !window.Contains(start) {
		t.Error("start bound must be inclusive")
	}
	if window.Contains(end) {
		t.Error("end bound must be exclusive")
	}
	if window.Contains(start.Add(-time.Nanosecond)) {
		t.Error("instant before start must be excluded")
	}
	if !window.Contains(end.Add(-time.Nanosecond)) {
		t.Error("instant just before end must be included")
	}

	unbounded := Window{Start: nil, End: end}
	if !unbounded.Contains(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("nil start means no lower bound")
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
