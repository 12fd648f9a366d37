package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"

	"github.com/marketops/missionctl/internal/board"
	"github.com/marketops/missionctl/internal/models"
	"github.com/marketops/missionctl/internal/tasks"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Task board commands",
	}

	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskCreateCmd())
	cmd.AddCommand(newTaskUpdateCmd())
	cmd.AddCommand(newTaskDeleteCmd())
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "Lists all tasks newest-first, with a per-column board summary.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			list, err := tasks.List(gormDB)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No tasks.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"ID", "Title", "Status", "Priority", "Waiting On", "Due"})
			for _, t := range list {
				waiting := ""
				if t.WaitingOn != nil {
					waiting = *t.WaitingOn
				}
				due := ""
				if t.DueDate != nil {
					due = t.DueDate.Format("2006-01-02")
				}
				tw.AppendRow(table.Row{shortID(t.ID), truncate(t.Title, 40), t.Status, t.Priority, waiting, due})
			}
			tw.Render()

			printBoardSummary(cmd, list)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "missionctl.yaml", "path to config file")
	return cmd
}

func newTaskCreateCmd() *cobra.Command {
	var (
		configPath string
		in         tasks.Input
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			list, err := tasks.List(gormDB)
			if err != nil {
				return err
			}

			task, err := tasks.Create(gormDB, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", shortID(task.ID), task.Title)
			printBoardSummary(cmd, board.Upsert(list, *task))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "missionctl.yaml", "path to config file")
	cmd.Flags().StringVar(&in.Title, "title", "", "task title (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "detailed description")
	cmd.Flags().StringVar(&in.Status, "status", "", "status (todo, in_progress, blocked, done)")
	cmd.Flags().StringVar(&in.Priority, "priority", "", "priority (high, medium, low)")
	cmd.Flags().StringVar(&in.WaitingOn, "waiting-on", "", "who or what blocks this task")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newTaskUpdateCmd() *cobra.Command {
	var (
		configPath string
		in         tasks.Input
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long:  "Replaces the task's editable fields. The waiting-on note is kept only while the task is blocked.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			id, err := resolveTaskID(gormDB, args[0])
			if err != nil {
				return err
			}

			list, err := tasks.List(gormDB)
			if err != nil {
				return err
			}

			task, err := tasks.Update(gormDB, id, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s [%s]\n", shortID(task.ID), task.Title, task.Status)
			printBoardSummary(cmd, board.Upsert(list, *task))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "missionctl.yaml", "path to config file")
	cmd.Flags().StringVar(&in.Title, "title", "", "task title (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "detailed description")
	cmd.Flags().StringVar(&in.Status, "status", "", "status (todo, in_progress, blocked, done)")
	cmd.Flags().StringVar(&in.Priority, "priority", "", "priority (high, medium, low)")
	cmd.Flags().StringVar(&in.WaitingOn, "waiting-on", "", "who or what blocks this task")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newTaskDeleteCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Deletes a task permanently. Prompts for confirmation when run interactively.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			id, err := resolveTaskID(gormDB, args[0])
			if err != nil {
				return err
			}

			if !yes && isInteractive() && !confirmDelete(cmd, id) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			list, err := tasks.List(gormDB)
			if err != nil {
				return err
			}

			if err := tasks.Delete(gormDB, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", shortID(id))
			printBoardSummary(cmd, board.Remove(list, id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "missionctl.yaml", "path to config file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

// resolveTaskID accepts a full UUID or an unambiguous prefix.
func resolveTaskID(gormDB *gorm.DB, ref string) (string, error) {
	var matches []models.Task
	if err := gormDB.Select("id").Where("id LIKE ?", ref+"%").Limit(2).Find(&matches).Error; err != nil {
		return "", fmt.Errorf("resolve task %q: %w", ref, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("task id %q is ambiguous", ref)
	}
}

// printBoardSummary renders the per-column counts from a locally
// reconciled task list, without another round trip to the store.
func printBoardSummary(cmd *cobra.Command, list []models.Task) {
	cols := board.Partition(list)
	fmt.Fprintf(cmd.OutOrStdout(), "Board: %d backlog · %d in progress · %d blocked · %d done (%d%%)\n",
		len(cols.Backlog), len(cols.InProgress), len(cols.Blocked), len(cols.Done),
		board.PercentDone(len(cols.Done), len(list)))
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func confirmDelete(cmd *cobra.Command, id string) bool {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Delete task %s permanently? Type \"yes\" to confirm: ", shortID(id))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()) == "yes"
	}
	return false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
