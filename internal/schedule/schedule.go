// Package schedule shapes scheduled-task rows for the calendar view and
// computes next-run times for cron routines.
package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/marketops/missionctl/internal/models"
	"github.com/marketops/missionctl/internal/timefmt"
)

// DayLabels are the canonical weekly-grid column labels, Sunday first.
var DayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Day is one weekly-grid column.
type Day struct {
	Label string
	Tasks []models.ScheduledTask
}

// UpcomingRun is a scheduled task annotated with a relative-future label
// for the "Next Up" list.
type UpcomingRun struct {
	Task models.ScheduledTask
	In   string
}

// View is the calendar page's shaped data.
type View struct {
	Always []models.ScheduledTask
	Week   []Day
	NextUp []UpcomingRun
	Total  int
}

// Partition shapes scheduled tasks for the calendar. Input order is
// preserved everywhere: the query orders next_run ascending with nulls
// last, so Next Up reads soonest-first. Grid membership comes from
// days_of_week and Next Up from a non-nil next_run, independent of
// schedule_type; tasks with no days_of_week never appear in the grid.
func Partition(tasks []models.ScheduledTask, now time.Time) View {
	view := View{Total: len(tasks)}

	for _, label := range DayLabels {
		day := Day{Label: label}
		for _, task := range tasks {
			if containsDay(task.DaysOfWeek, label) {
				day.Tasks = append(day.Tasks, task)
			}
		}
		view.Week = append(view.Week, day)
	}

	for _, task := range tasks {
		if task.ScheduleType == models.ScheduleAlways {
			view.Always = append(view.Always, task)
		}
		if task.NextRun != nil {
			view.NextUp = append(view.NextUp, UpcomingRun{
				Task: task,
				In:   timefmt.Until(*task.NextRun, now),
			})
		}
	}
	return view
}

// containsDay reports whether the days_of_week JSON column contains the
// given label. Null or malformed columns match nothing.
func containsDay(raw, label string) bool {
	if raw == "" || raw == "null" {
		return false
	}
	var days []string
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return false
	}
	for _, day := range days {
		if day == label {
			return true
		}
	}
	return false
}

// NextRun computes the next fire time after now for a standard 5-field
// cron expression.
func NextRun(expr string, now time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule: parse cron %q: %w", expr, err)
	}
	return sched.Next(now), nil
}
