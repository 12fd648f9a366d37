package models

import "time"

// Project statuses.
const (
	ProjectPlanning   = "planning"
	ProjectInProgress = "in_progress"
	ProjectBlocked    = "blocked"
	ProjectLaunched   = "launched"
	ProjectDone       = "done"
)

// Project is a tracked initiative with a progress bar. Progress is stored
// as written by the agents and may be out of range; the display value is
// clamped to [0,100] and rounded (see internal/projects).
type Project struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:16;default:planning;index" json:"status"`
	Priority    string     `gorm:"size:8;default:medium" json:"priority"`
	Progress    float64    `gorm:"default:0" json:"progress"`
	LaunchDate  *time.Time `json:"launch_date"`
	RepoURL     *string    `gorm:"size:256" json:"repo_url"`
	Color       *string    `gorm:"size:16" json:"color"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
