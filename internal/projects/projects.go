// Package projects computes the projects-board summary counts and display
// values.
package projects

import (
	"math"
	"time"

	"github.com/marketops/missionctl/internal/models"
)

// launchWindow is how far ahead a launch date counts as "launching soon".
const launchWindow = 60 * 24 * time.Hour

// Summary holds the four stat-card counts.
type Summary struct {
	InProgress    int
	Blocked       int
	LaunchingSoon int
	Done          int
}

// Summarize counts projects per stat card.
func Summarize(projects []models.Project, now time.Time) Summary {
	var s Summary
	for _, p := range projects {
		switch p.Status {
		case models.ProjectInProgress:
			s.InProgress++
		case models.ProjectBlocked:
			s.Blocked++
		case models.ProjectDone:
			s.Done++
		}
		if LaunchingSoon(p.LaunchDate, now) {
			s.LaunchingSoon++
		}
	}
	return s
}

// LaunchingSoon reports whether launch falls within [now, now+60d],
// inclusive of both ends. Past dates never count.
func LaunchingSoon(launch *time.Time, now time.Time) bool {
	if launch == nil {
		return false
	}
	diff := launch.Sub(now)
	return diff >= 0 && diff <= launchWindow
}

// ClampProgress converts a stored progress value into the displayed bar
// percentage: rounded, clamped to [0,100], with NaN collapsing to 0.
func ClampProgress(value float64) int {
	if math.IsNaN(value) {
		return 0
	}
	rounded := math.Round(value)
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return int(rounded)
}
