// Package board shapes task rows for the task board: status columns,
// summary stats, and the id-keyed list reconciliation applied after the
// task editor saves or deletes a row.
package board

import (
	"math"

	"github.com/marketops/missionctl/internal/models"
)

// Columns holds the four disjoint status buckets, each preserving the
// source ordering.
type Columns struct {
	Backlog    []models.Task
	InProgress []models.Task
	Blocked    []models.Task
	Done       []models.Task
}

// Partition splits tasks into status columns. Unknown statuses land in the
// backlog so a bad row is still visible somewhere.
func Partition(tasks []models.Task) Columns {
	var cols Columns
	for _, task := range tasks {
		switch task.Status {
		case models.StatusInProgress:
			cols.InProgress = append(cols.InProgress, task)
		case models.StatusBlocked:
			cols.Blocked = append(cols.Blocked, task)
		case models.StatusDone:
			cols.Done = append(cols.Done, task)
		default:
			cols.Backlog = append(cols.Backlog, task)
		}
	}
	return cols
}

// PercentDone returns round(100 * done / total), and 0 when total is 0.
func PercentDone(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// Upsert applies a saved row to an ordered task list: replace in place when
// the id is already present, otherwise prepend. The input slice is not
// modified.
func Upsert(tasks []models.Task, saved models.Task) []models.Task {
	for i, task := range tasks {
		if task.ID == saved.ID {
			out := make([]models.Task, len(tasks))
			copy(out, tasks)
			out[i] = saved
			return out
		}
	}
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, saved)
	return append(out, tasks...)
}

// Remove drops the task with the given id, if present. The input slice is
// not modified.
func Remove(tasks []models.Task, id string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID == id {
			continue
		}
		out = append(out, task)
	}
	return out
}
