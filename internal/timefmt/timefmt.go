// Package timefmt renders the relative and absolute time labels used across
// the dashboard. The bucket boundaries are exact: 59s stays in seconds, 60s
// rolls to minutes, and so on. Note the deliberate asymmetry between past
// and future labels: "ago" rolls from weeks to months at 4 weeks, "in" at 5.
package timefmt

import (
	"fmt"
	"time"
)

// Ago formats how long ago t was relative to now, e.g. "59s ago", "3h ago".
// A zero t yields "" and a future t yields "just now".
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	if diff < 0 {
		return "just now"
	}

	seconds := int64(diff.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds ago", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	if weeks := days / 7; weeks < 4 {
		return fmt.Sprintf("%dw ago", weeks)
	}
	if months := days / 30; months < 12 {
		return fmt.Sprintf("%dmo ago", months)
	}
	return fmt.Sprintf("%dy ago", days/365)
}

// Until formats how far in the future t is, e.g. "in 59s", "in 2w". A zero
// t yields "" and a past or present t yields "now".
func Until(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := t.Sub(now)
	if diff <= 0 {
		return "now"
	}

	seconds := int64(diff.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("in %ds", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("in %dm", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("in %dh", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("in %dd", days)
	}
	if weeks := days / 7; weeks < 5 {
		return fmt.Sprintf("in %dw", weeks)
	}
	if months := days / 30; months < 12 {
		return fmt.Sprintf("in %dmo", months)
	}
	return fmt.Sprintf("in %dy", days/365)
}

// Date formats t as "Jan 2, 2006". Zero t yields "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// DayMonth formats t as "Jan 2", used for due dates. Zero t yields "".
func DayMonth(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2")
}

// ISODate parses a YYYY-MM-DD string into a "Mon, Jan 02, 2006" heading.
// Unparseable input is returned verbatim rather than dropped.
func ISODate(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("Mon, Jan 02, 2006")
}
