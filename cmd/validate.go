package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/maxkimambo/gantt/internal/layout"
	"github.com/maxkimambo/gantt/internal/utils"
)

var (
	validateTasksFile string
	validateTodayFlag string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a task file and show the resolved schedule without rendering",
	Long: `Loads the YAML task file and resolves every due date, reporting all
validation failures at once. On success it prints the resolved schedule
as a table, with past-due tasks highlighted.

Example:
gantt validate --tasks my_project.yaml
`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateTasksFile, "tasks", "t", "tasks.yaml", "YAML task file")
	validateCmd.Flags().StringVar(&validateTodayFlag, "today", "", "Reference date YYYY-MM-DD for past-due highlighting (default: current date)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	today, err := resolveToday(validateTodayFlag)
	if err != nil {
		return err
	}

	resolved, err := loadAndResolve(validateTasksFile)
	if err != nil {
		return reportValidationErrors(err)
	}

	result, err := layout.Compose(resolved, today)
	if err != nil {
		return err
	}

	fmt.Println(scheduleTable(result))

	tasks := resolved.TaskCount()
	pastDue := 0
	for _, row := range result.Rows {
		if row.Kind == layout.RowTask && row.Task.PastDue {
			pastDue++
		}
	}

	summary := utils.NewBox(utils.SuccessMessage, fmt.Sprintf("%q is valid", resolved.Name)).
		AddBullet(fmt.Sprintf("%d tasks in %d groups", tasks, len(resolved.Groups))).
		AddBullet(fmt.Sprintf("chart range %s to %s",
			result.Left.Format(dateLayout), result.Right.Format(dateLayout)))
	if pastDue > 0 {
		summary.AddBullet(fmt.Sprintf("%d task(s) past due as of %s", pastDue, today.Format(dateLayout)))
	}
	fmt.Println(summary.Render())
	return nil
}

func scheduleTable(result *layout.Result) string {
	table := utils.NewTableFormatter([]string{"ID", "Task", "Assignee", "Start", "Due", "Status"})
	pastDueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("178"))

	for _, row := range result.Rows {
		switch row.Kind {
		case layout.RowGroup:
			groupStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(layout.GroupColor(row.ColorIndex))).
				Bold(true)
			table.AddStyledRow([]string{"", row.Label, "", "", "", ""}, &groupStyle)
		case layout.RowTask:
			bar := row.Task
			status := "scheduled"
			style := (*lipgloss.Style)(nil)
			if bar.PastDue {
				status = "past due"
				style = &pastDueStyle
			}
			table.AddStyledRow([]string{
				bar.ID,
				row.Label,
				bar.Assignee,
				bar.Start.Format(dateLayout),
				bar.Due.Format(dateLayout),
				status,
			}, style)
		}
	}
	return table.String()
}
