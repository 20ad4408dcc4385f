package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/gantt/internal/gcal"
	"github.com/maxkimambo/gantt/internal/utils"
)

var (
	exportTasksFile    string
	exportCalendarName string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Push resolved due dates to Google Calendar",
	Long: `Resolves the task file and upserts one all-day event per task on its
due date. Events are keyed by task id, so re-running the export after
editing the task file updates events in place.

Requires an OAuth client file at ~/.config/gantt/credentials.json; the
first run opens a browser window to authorize.

Example:
gantt export --tasks my_project.yaml --calendar "Project Deadlines"
`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportTasksFile, "tasks", "t", "tasks.yaml", "YAML task file")
	exportCmd.Flags().StringVarP(&exportCalendarName, "calendar", "c", "", "Target calendar name (required)")
	exportCmd.MarkFlagRequired("calendar")
}

func runExport(cmd *cobra.Command, args []string) error {
	resolved, err := loadAndResolve(exportTasksFile)
	if err != nil {
		return reportValidationErrors(err)
	}

	ctx := cmd.Context()
	exporter, err := gcal.NewExporter(ctx, exportCalendarName)
	if err != nil {
		return fmt.Errorf("failed to connect to Google Calendar: %w", err)
	}

	stats, err := exporter.ExportProject(ctx, resolved)
	if err != nil {
		return err
	}

	fmt.Println(utils.Success(
		fmt.Sprintf("Exported %q to calendar %q", resolved.Name, exportCalendarName),
		fmt.Sprintf("%d event(s) created, %d updated", stats.Created, stats.Updated),
	))
	return nil
}
