package models

import "time"

// Schedule types. Always-on routines ignore DaysOfWeek and NextRun.
const (
	ScheduleCron   = "cron"
	ScheduleAlways = "always"
)

// ScheduledTask is an automated routine shown on the calendar. Name is
// unique so routine seeding can upsert by it. CronExpr is the source of
// truth for NextRun, which is recomputed whenever routines are seeded.
type ScheduledTask struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Name         string     `gorm:"size:128;uniqueIndex;not null" json:"name"`
	ScheduleType string     `gorm:"size:8;default:cron" json:"schedule_type"`
	CronExpr     *string    `gorm:"size:64" json:"cron_expr"`
	CronHuman    *string    `gorm:"size:128" json:"cron_human"`
	DaysOfWeek   string     `gorm:"type:json" json:"days_of_week"`
	TimeOfDay    *string    `gorm:"size:32" json:"time_of_day"`
	Color        *string    `gorm:"size:16" json:"color"`
	NextRun      *time.Time `gorm:"index" json:"next_run"`
	LastRun      *time.Time `json:"last_run"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
