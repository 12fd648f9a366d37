package timefmt

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestAgo_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"future", now.Add(30 * time.Second), "just now"},
		{"59 seconds", now.Add(-59 * time.Second), "59s ago"},
		{"60 seconds", now.Add(-60 * time.Second), "1m ago"},
		{"59 minutes", now.Add(-59 * time.Minute), "59m ago"},
		{"1 hour", now.Add(-time.Hour), "1h ago"},
		{"23 hours", now.Add(-23 * time.Hour), "23h ago"},
		{"1 day", now.Add(-24 * time.Hour), "1d ago"},
		{"6 days", now.Add(-6 * 24 * time.Hour), "6d ago"},
		{"1 week", now.Add(-7 * 24 * time.Hour), "1w ago"},
		{"3 weeks", now.Add(-27 * 24 * time.Hour), "3w ago"},
		{"4 weeks rolls to months", now.Add(-28 * 24 * time.Hour), "0mo ago"},
		{"2 months", now.Add(-61 * 24 * time.Hour), "2mo ago"},
		{"1 year", now.Add(-365 * 24 * time.Hour), "1y ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ago(tt.t, now); got != tt.want {
				t.Errorf("Ago = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUntil_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"past", now.Add(-time.Minute), "now"},
		{"exactly now", now, "now"},
		{"59 seconds", now.Add(59 * time.Second), "in 59s"},
		{"60 seconds", now.Add(60 * time.Second), "in 1m"},
		{"59 minutes", now.Add(59 * time.Minute), "in 59m"},
		{"23 hours", now.Add(23 * time.Hour), "in 23h"},
		{"6 days", now.Add(6 * 24 * time.Hour), "in 6d"},
		{"4 weeks still weeks", now.Add(34 * 24 * time.Hour), "in 4w"},
		{"5 weeks rolls to months", now.Add(35 * 24 * time.Hour), "in 1mo"},
		{"11 months", now.Add(350 * 24 * time.Hour), "in 11mo"},
		{"1 year", now.Add(400 * 24 * time.Hour), "in 1y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Until(tt.t, now); got != tt.want {
				t.Errorf("Until = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateFormats(t *testing.T) {
	d := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if got := Date(d); got != "Jan 5, 2026" {
		t.Errorf("Date = %q, want %q", got, "Jan 5, 2026")
	}
	if got := Date(time.Time{}); got != "" {
		t.Errorf("Date(zero) = %q, want empty", got)
	}
	if got := DayMonth(d); got != "Jan 5" {
		t.Errorf("DayMonth = %q, want %q", got, "Jan 5")
	}
}

func TestISODate(t *testing.T) {
	if got := ISODate("2026-03-14"); got != "Sat, Mar 14, 2026" {
		t.Errorf("ISODate = %q, want %q", got, "Sat, Mar 14, 2026")
	}
	if got := ISODate("not-a-date"); got != "not-a-date" {
		t.Errorf("ISODate passthrough = %q, want input", got)
	}
}
