package dashboard

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/marketops/missionctl/internal/models"
)

// feedWindow is how far back the home feed reaches for briefings.
const feedWindow = 30

// activityLimit caps the board's recent-activity list.
const activityLimit = 10

// RecentBriefings returns recommendations from the last 30 days, newest
// first. Date is an ISO string so the range filter stays lexical.
func RecentBriefings(db *gorm.DB, now time.Time) ([]models.StockRecommendation, error) {
	if db == nil {
		return nil, nil
	}
	cutoff := now.AddDate(0, 0, -feedWindow).Format("2006-01-02")
	var recs []models.StockRecommendation
	err := db.Where("date >= ?", cutoff).Order("date DESC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard: recent briefings: %w", err)
	}
	return recs, nil
}

// OpenTasks returns every task that is not done, ordered by the priority
// string ascending. The lexical order happens to read high, low, medium;
// the feed teaser filters further so only blocked and in-progress rows
// surface there.
func OpenTasks(db *gorm.DB) ([]models.Task, error) {
	if db == nil {
		return nil, nil
	}
	var tasks []models.Task
	err := db.Where("status <> ?", models.StatusDone).Order("priority ASC").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard: open tasks: %w", err)
	}
	return tasks, nil
}

// AllTasks returns every task, newest first.
func AllTasks(db *gorm.DB) ([]models.Task, error) {
	if db == nil {
		return nil, nil
	}
	var tasks []models.Task
	err := db.Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard: all tasks: %w", err)
	}
	return tasks, nil
}

// RecentActivity returns the 10 most recent agent activity entries.
func RecentActivity(db *gorm.DB) ([]models.AgentActivity, error) {
	if db == nil {
		return nil, nil
	}
	var entries []models.AgentActivity
	err := db.Order("created_at DESC").Limit(activityLimit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard: recent activity: %w", err)
	}
	return entries, nil
}

// ScheduledRoutines returns all scheduled tasks ordered next_run ascending
// with nulls last, so the soonest routine leads and always-on rows trail.
func ScheduledRoutines(db *gorm.DB) ([]models.ScheduledTask, error) {
	if db == nil {
		return nil, nil
	}
	var tasks []models.ScheduledTask
	err := db.Order("next_run IS NULL").Order("next_run ASC").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard: scheduled routines: %w", err)
	}
	return tasks, nil
}

// AllDocuments returns every vault document, most recently updated first.
func AllDocuments(db *gorm.DB) ([]models.Document, error) {
	if db == nil {
		return nil, nil
	}
	var docs []models.Document
	err := db.Order("updated_at DESC").Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard: documents: %w", err)
	}
	return docs, nil
}

// AllProjects returns every project, newest first.
func AllProjects(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, nil
	}
	var list []models.Project
	err := db.Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("dashboard: projects: %w", err)
	}
	return list, nil
}
