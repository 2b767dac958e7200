// Package billing computes credit-card billing cycles and detects
// duplicate transactions during import. Everything here is pure:
// no I/O, no shared state.
package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period is one closed billing cycle, as an inclusive range of
// calendar days.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) String() string {
	return fmt.Sprintf("[%s, %s]", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// Contains reports whether the given day falls inside the period.
func (p Period) Contains(day time.Time) bool {
	d := midnight(day)
	return !d.Before(p.Start) && !d.After(p.End)
}

// CurrentClosedPeriod returns the most recently completed billing
// cycle as of ref, for a card whose cycle closes on cutoffDay (1-31).
// The period always ends the day before the latest cutoff at or before
// ref; for cutoffDay 1 that is the entire previous calendar month.
//
// A cutoff day beyond a month's length clamps to that month's last
// day, on both boundaries (cutoff 31 in April reads as April 30).
func CurrentClosedPeriod(cutoffDay int, ref time.Time) Period {
	year, month, day := ref.Date()

	// Month holding the period's start cutoff: one back if the current
	// month's cutoff has passed, two back otherwise.
	monthsBack := -2
	if day >= clampDay(cutoffDay, year, month) {
		monthsBack = -1
	}

	start := cutoffDate(cutoffDay, year, month+time.Month(monthsBack), ref.Location())
	end := cutoffDate(cutoffDay, year, month+time.Month(monthsBack+1), ref.Location()).AddDate(0, 0, -1)
	return Period{Start: start, End: end}
}

// cutoffDate returns cutoffDay within the given month (which may be
// outside 1-12 and is normalized), clamped to the month's length.
func cutoffDate(cutoffDay, year int, month time.Month, loc *time.Location) time.Time {
	norm := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	y, m, _ := norm.Date()
	return time.Date(y, m, clampDay(cutoffDay, y, m), 0, 0, 0, 0, loc)
}

// clampDay limits day to the length of the given month.
func clampDay(day, year int, month time.Month) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}

// Balance returns sum(expenses) - sum(payments). A negative result
// means the card was overpaid; no clamping.
func Balance(expenses, payments []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e)
	}
	for _, p := range payments {
		total = total.Sub(p)
	}
	return total
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
