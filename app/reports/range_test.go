package reports

import (
	"testing"
	"time"
)

func fixNow(t *testing.T, iso string) {
	t.Helper()
	fixed, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", iso, err)
	}
	old := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = old })
}

func TestResolveRange(t *testing.T) {
	fixNow(t, "2025-03-15")

	tests := []struct {
		name      string
		start     string
		end       string
		period    Period
		today     bool
		wantStart string
		wantEnd   string
	}{
		{"today flag wins", "2025-01-01", "2025-01-31", PeriodMonthly, true, "2025-03-15", "2025-03-15"},
		{"explicit range passes through", "2025-02-01", "2025-02-10", "", false, "2025-02-01", "2025-02-10"},
		{"reversed range passes through", "2025-02-10", "2025-02-01", "", false, "2025-02-10", "2025-02-01"},
		{"start without end falls to default", "2025-02-01", "", "", false, "2025-03-09", "2025-03-15"},
		{"daily is a single day", "", "", PeriodDaily, false, "2025-03-15", "2025-03-15"},
		{"weekly spans seven days", "", "", PeriodWeekly, false, "2025-03-09", "2025-03-15"},
		{"monthly spans thirty days", "", "", PeriodMonthly, false, "2025-02-14", "2025-03-15"},
		{"unknown period defaults to weekly", "", "", Period("quarterly"), false, "2025-03-09", "2025-03-15"},
		{"empty period defaults to weekly", "", "", "", false, "2025-03-09", "2025-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd := ResolveRange(tt.start, tt.end, tt.period, tt.today)
			if gotStart != tt.wantStart || gotEnd != tt.wantEnd {
				t.Errorf("ResolveRange() = (%s, %s), want (%s, %s)", gotStart, gotEnd, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveRangeCrossesMonthBoundary(t *testing.T) {
	fixNow(t, "2025-03-03")

	start, end := ResolveRange("", "", PeriodWeekly, false)
	if start != "2025-02-25" || end != "2025-03-03" {
		t.Errorf("ResolveRange() = (%s, %s), want (2025-02-25, 2025-03-03)", start, end)
	}
}
