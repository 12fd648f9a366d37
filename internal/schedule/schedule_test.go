package schedule

import (
	"testing"
	"time"

	"github.com/marketops/missionctl/internal/models"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestPartition_AlwaysRunning(t *testing.T) {
	tasks := []models.ScheduledTask{
		{ID: "1", Name: "Market Watcher", ScheduleType: models.ScheduleAlways},
		{ID: "2", Name: "Morning Briefing", ScheduleType: models.ScheduleCron, DaysOfWeek: `["Mon"]`},
	}
	view := Partition(tasks, now)

	if len(view.Always) != 1 || view.Always[0].ID != "1" {
		t.Errorf("Always = %v, want the always-on routine only", view.Always)
	}
	if view.Total != 2 {
		t.Errorf("Total = %d, want 2", view.Total)
	}
}

func TestPartition_WeeklyGrid(t *testing.T) {
	tasks := []models.ScheduledTask{
		{ID: "1", Name: "Weekday run", DaysOfWeek: `["Mon","Wed","Fri"]`},
		{ID: "2", Name: "No days", DaysOfWeek: "null"},
		{ID: "3", Name: "Weekend run", DaysOfWeek: `["Sat","Sun"]`},
		{ID: "4", Name: "Always on", ScheduleType: models.ScheduleAlways},
	}
	view := Partition(tasks, now)

	if len(view.Week) != 7 {
		t.Fatalf("len(Week) = %d, want 7", len(view.Week))
	}
	if view.Week[0].Label != "Sun" || view.Week[6].Label != "Sat" {
		t.Errorf("Week labels = %s..%s, want Sun..Sat", view.Week[0].Label, view.Week[6].Label)
	}

	counts := map[string]int{}
	for _, day := range view.Week {
		counts[day.Label] = len(day.Tasks)
	}
	want := map[string]int{"Sun": 1, "Mon": 1, "Tue": 0, "Wed": 1, "Thu": 0, "Fri": 1, "Sat": 1}
	for label, n := range want {
		if counts[label] != n {
			t.Errorf("%s has %d tasks, want %d", label, counts[label], n)
		}
	}
}

func TestPartition_NextUpSoonestFirst(t *testing.T) {
	// The query orders next_run ascending nulls-last; Partition preserves it.
	tasks := []models.ScheduledTask{
		{ID: "1", Name: "soon", NextRun: ptr(now.Add(30 * time.Second))},
		{ID: "2", Name: "later", NextRun: ptr(now.Add(3 * time.Hour))},
		{ID: "3", Name: "overdue", NextRun: ptr(now.Add(-time.Minute))},
		{ID: "4", Name: "never", NextRun: nil},
	}
	view := Partition(tasks, now)

	if len(view.NextUp) != 3 {
		t.Fatalf("len(NextUp) = %d, want 3", len(view.NextUp))
	}
	if view.NextUp[0].In != "in 30s" {
		t.Errorf("NextUp[0].In = %q, want %q", view.NextUp[0].In, "in 30s")
	}
	if view.NextUp[1].In != "in 3h" {
		t.Errorf("NextUp[1].In = %q, want %q", view.NextUp[1].In, "in 3h")
	}
	if view.NextUp[2].In != "now" {
		t.Errorf("past-due NextUp[2].In = %q, want %q", view.NextUp[2].In, "now")
	}
}

func TestPartition_ScheduleTypeDoesNotGate(t *testing.T) {
	// An always-on routine with days and a next run shows up in all three
	// sections.
	tasks := []models.ScheduledTask{
		{ID: "1", Name: "Market Watcher", ScheduleType: models.ScheduleAlways, DaysOfWeek: `["Mon"]`, NextRun: ptr(now.Add(time.Hour))},
	}
	view := Partition(tasks, now)

	if len(view.Always) != 1 {
		t.Errorf("len(Always) = %d, want 1", len(view.Always))
	}
	if len(view.Week[1].Tasks) != 1 {
		t.Errorf("Mon has %d tasks, want 1", len(view.Week[1].Tasks))
	}
	if len(view.NextUp) != 1 || view.NextUp[0].In != "in 1h" {
		t.Errorf("NextUp = %v, want one entry in 1h", view.NextUp)
	}
}

func TestContainsDay_Malformed(t *testing.T) {
	for _, raw := range []string{"", "null", "not json", `{"Mon":true}`} {
		if containsDay(raw, "Mon") {
			t.Errorf("containsDay(%q, Mon) = true, want false", raw)
		}
	}
}

func TestNextRun(t *testing.T) {
	// Daily at 07:00: from 12:00 the next run is tomorrow morning.
	next, err := NextRun("0 7 * * *", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("NextRun = %v, want %v", next, want)
	}
}

func TestNextRun_BadExpr(t *testing.T) {
	if _, err := NextRun("not a cron", now); err == nil {
		t.Fatal("expected error for invalid expression")
	}
}
