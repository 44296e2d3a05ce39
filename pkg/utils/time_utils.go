package utils

import "time"

// Visit timestamps are recorded in UTC; the passport dedup key truncates
// them to UTC calendar days.

func NowUTC() time.Time { return time.Now().UTC() }

// DayKeyUTC formats t as a UTC calendar day, e.g. "2024-03-01".
// Two timestamps on the same UTC day share a key.
func DayKeyUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// TruncateToDayUTC drops the time-of-day component in UTC.
func TruncateToDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatStampDate renders a passport stamp date, e.g. "01 Mar 2024".
func FormatStampDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("02 Jan 2006")
}
