// Package tasks implements the task write path shared by the dashboard
// API and the mc CLI: input validation, payload shaping and the three
// atomic store operations (insert, patch-by-id, delete-by-id).
package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketops/missionctl/internal/models"
)

// ErrInvalidInput marks validation failures so callers can reject the
// submission before any request reaches the store.
var ErrInvalidInput = errors.New("tasks: invalid input")

// ErrTitleRequired is returned when the trimmed title is empty.
var ErrTitleRequired = fmt.Errorf("%w: title is required", ErrInvalidInput)

// ErrNoDatabase is returned when no store connection is configured. The
// write path aborts instead of degrading.
var ErrNoDatabase = errors.New("tasks: no database connection")

// Input is a task form submission. WaitingOn is only honored while Status
// is blocked; it is cleared otherwise, even if previously populated.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	WaitingOn   string `json:"waiting_on"`
	DueDate     string `json:"due_date"`
}

// Validate checks the input and normalizes its enums to the editor
// defaults (status=todo, priority=medium).
func (in *Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	switch in.Status {
	case models.StatusTodo, models.StatusInProgress, models.StatusBlocked, models.StatusDone:
	case "":
		in.Status = models.StatusTodo
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	switch in.Priority {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
	case "":
		in.Priority = models.PriorityMedium
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, in.Priority)
	}
	if in.DueDate != "" {
		if _, err := parseDueDate(in.DueDate); err != nil {
			return err
		}
	}
	return nil
}

// apply writes the validated input onto a task row.
func (in Input) apply(task *models.Task) {
	task.Title = strings.TrimSpace(in.Title)
	task.Description = optional(strings.TrimSpace(in.Description))
	task.Status = in.Status
	task.Priority = in.Priority

	task.WaitingOn = nil
	if in.Status == models.StatusBlocked {
		task.WaitingOn = optional(strings.TrimSpace(in.WaitingOn))
	}

	task.DueDate = nil
	if in.DueDate != "" {
		due, _ := parseDueDate(in.DueDate)
		task.DueDate = &due
	}
}

// Create validates in, inserts a new row and returns it as stored.
func Create(db *gorm.DB, in Input) (*models.Task, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	task := models.Task{ID: uuid.NewString()}
	in.apply(&task)
	if err := db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("tasks: create: %w", err)
	}
	return &task, nil
}

// Update validates in, patches the row with the given id and returns it as
// stored.
func Update(db *gorm.DB, id string, in Input) (*models.Task, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var task models.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, fmt.Errorf("tasks: load %s: %w", id, err)
	}
	in.apply(&task)
	// Save with Select so cleared nullable fields are written as NULL.
	if err := db.Model(&task).Select("title", "description", "status", "priority", "waiting_on", "due_date").Updates(&task).Error; err != nil {
		return nil, fmt.Errorf("tasks: update %s: %w", id, err)
	}
	return &task, nil
}

// Delete removes the row with the given id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrNoDatabase
	}
	res := db.Where("id = ?", id).Delete(&models.Task{})
	if res.Error != nil {
		return fmt.Errorf("tasks: delete %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tasks: delete %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// List returns all tasks newest-first.
func List(db *gorm.DB) ([]models.Task, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}
	var out []models.Task
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("tasks: list: %w", err)
	}
	return out, nil
}

// parseDueDate accepts a YYYY-MM-DD date, tolerating a trailing timestamp.
func parseDueDate(value string) (time.Time, error) {
	if len(value) > 10 {
		value = value[:10]
	}
	due, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: due date %q", ErrInvalidInput, value)
	}
	return due, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
