package view

import (
	"fmt"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// FormatDateLabel formats d as "Mon 12.10.2026".
func FormatDateLabel(d dateutil.Date) string {
	return d.Weekday().String()[:3] + " " + dateutil.Format(d)
}

// FormatRelative describes d relative to today: "today", "tomorrow",
// "in 3 days", "yesterday" or "5 days ago".
func FormatRelative(d, today dateutil.Date) string {
	days := daysBetween(today, d)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// daysBetween counts in UTC so DST never turns a day into 23 or 25 hours.
func daysBetween(from, to dateutil.Date) int {
	return int(to.Time(time.UTC).Sub(from.Time(time.UTC)).Hours() / 24)
}
