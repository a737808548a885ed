package reports

import "time"

// Period selects the default report window when no explicit range is given.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

const dateLayout = "2006-01-02"

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// ResolveRange normalizes the report window into inclusive ISO date bounds.
// Priority: today flag, then an explicit start AND end (passed through as
// given; a reversed range just matches no rows), then a window ending today
// whose length depends on the period (daily 1, monthly 30, weekly 7 default).
func ResolveRange(start, end string, period Period, today bool) (string, string) {
	now := nowFunc()

	if today {
		d := now.Format(dateLayout)
		return d, d
	}

	if start != "" && end != "" {
		return start, end
	}

	days := 7
	switch period {
	case PeriodDaily:
		days = 1
	case PeriodMonthly:
		days = 30
	}

	endDate := now
	startDate := endDate.AddDate(0, 0, -(days - 1))
	return startDate.Format(dateLayout), endDate.Format(dateLayout)
}
