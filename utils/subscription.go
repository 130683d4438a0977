package utils

import (
	"fmt"
	"time"
)

// TrialDays is the fixed window granted for tier 0.
const TrialDays = 7

// PaidTierDays is the per-month day count for paid tiers. Paid windows
// are flat 30-day multiples, not calendar months.
const PaidTierDays = 30

// TierLabel returns the subscription label for a selected tier:
// "trial" for 0, "Nmonths" for N > 0.
func TierLabel(selectedTier int) string {
	if selectedTier == 0 {
		return "trial"
	}
	return fmt.Sprintf("%dmonths", selectedTier)
}

// SubscriptionWindow computes the window granted by approving a request
// with the given tier at the given instant. The window always starts at
// now; any previous window is overwritten by the caller, not extended.
func SubscriptionWindow(selectedTier int, now time.Time) (start, end time.Time) {
	days := TrialDays
	if selectedTier > 0 {
		days = selectedTier * PaidTierDays
	}
	return now, now.AddDate(0, 0, days)
}

// AddCalendarMonth advances t by one calendar month, keeping the same
// day-of-month and clamping to the last valid day of the target month
// (Jan 31 -> Feb 28, or Feb 29 in a leap year).
func AddCalendarMonth(t time.Time) time.Time {
	year, month, day := t.Date()

	// Last day of the target month: day 0 of the month after it.
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, month+1, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
