package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marketops/missionctl/internal/config"
	"github.com/marketops/missionctl/internal/models"
	"github.com/marketops/missionctl/internal/schedule"
)

// AllModels returns the list of GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Task{},
		&models.AgentActivity{},
		&models.StockRecommendation{},
		&models.ScheduledTask{},
		&models.Document{},
		&models.Project{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// SeedRoutines upserts ScheduledTask rows from configuration, keyed by
// name. NextRun is recomputed from the cron expression for cron routines;
// always-on routines carry no next run.
func SeedRoutines(db *gorm.DB, routines []config.RoutineConfig, now time.Time) error {
	for _, rc := range routines {
		days, err := marshalDays(rc.DaysOfWeek)
		if err != nil {
			return fmt.Errorf("db: marshal days_of_week for routine %q: %w", rc.Name, err)
		}

		task := models.ScheduledTask{
			ID:           uuid.NewString(),
			Name:         rc.Name,
			ScheduleType: rc.ScheduleType,
			CronExpr:     optional(rc.Cron),
			CronHuman:    optional(rc.CronHuman),
			DaysOfWeek:   days,
			TimeOfDay:    optional(rc.TimeOfDay),
			Color:        optional(rc.Color),
		}

		if rc.ScheduleType == models.ScheduleCron {
			next, err := schedule.NextRun(rc.Cron, now)
			if err != nil {
				return fmt.Errorf("db: routine %q: %w", rc.Name, err)
			}
			task.NextRun = &next
		}

		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"schedule_type", "cron_expr", "cron_human", "days_of_week", "time_of_day", "color", "next_run"}),
		}).Create(&task)
		if result.Error != nil {
			return fmt.Errorf("db: seed routine %q: %w", rc.Name, result.Error)
		}
	}
	return nil
}

// marshalDays encodes the days_of_week list for its JSON column. A
// routine with no days stores the empty string, which the calendar grid
// treats as matching no day.
func marshalDays(days []string) (string, error) {
	if len(days) == 0 {
		return "", nil
	}
	data, err := json.Marshal(days)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
