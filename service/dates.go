package service

import (
	"fmt"
	"time"
)

// LastDayOfMonth returns the final calendar day of the given month, the
// transaction date for that month's allocation entry.
func LastDayOfMonth(year int, month int) time.Time {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

// MonthLabel formats a year/month pair the way report filenames expect.
func MonthLabel(year int, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}
