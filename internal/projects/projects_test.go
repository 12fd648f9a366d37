package projects

import (
	"math"
	"testing"
	"time"

	"github.com/marketops/missionctl/internal/models"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestSummarize(t *testing.T) {
	soon := now.Add(10 * 24 * time.Hour)
	far := now.Add(90 * 24 * time.Hour)
	projects := []models.Project{
		{Status: models.ProjectInProgress, LaunchDate: &soon},
		{Status: models.ProjectInProgress},
		{Status: models.ProjectBlocked},
		{Status: models.ProjectDone},
		{Status: models.ProjectPlanning, LaunchDate: &far},
		{Status: models.ProjectLaunched},
	}
	s := Summarize(projects, now)

	if s.InProgress != 2 {
		t.Errorf("InProgress = %d, want 2", s.InProgress)
	}
	if s.Blocked != 1 {
		t.Errorf("Blocked = %d, want 1", s.Blocked)
	}
	if s.Done != 1 {
		t.Errorf("Done = %d, want 1", s.Done)
	}
	if s.LaunchingSoon != 1 {
		t.Errorf("LaunchingSoon = %d, want 1", s.LaunchingSoon)
	}
}

func TestLaunchingSoon_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		launch *time.Time
		want   bool
	}{
		{"nil", nil, false},
		{"exactly now", ptr(now), true},
		{"now plus 60 days", ptr(now.Add(60 * 24 * time.Hour)), true},
		{"now plus 61 days", ptr(now.Add(61 * 24 * time.Hour)), false},
		{"yesterday", ptr(now.Add(-24 * time.Hour)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LaunchingSoon(tt.launch, now); got != tt.want {
				t.Errorf("LaunchingSoon = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-10, 0},
		{140, 100},
		{47.6, 48},
		{0, 0},
		{100, 100},
		{99.4, 99},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ClampProgress(tt.in); got != tt.want {
			t.Errorf("ClampProgress(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
