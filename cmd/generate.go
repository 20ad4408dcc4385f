package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/gantt/internal/layout"
	"github.com/maxkimambo/gantt/internal/logger"
	"github.com/maxkimambo/gantt/internal/render"
	"github.com/maxkimambo/gantt/internal/utils"
)

var (
	tasksFile  string
	outputBase string
	formatFlag string
	todayFlag  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a Gantt chart from a task file",
	Long: `Loads the YAML task file, resolves every task's due date against the
project's working-day calendar and renders the chart.

Each task must have either a 'due' date or a 'duration' such as 3d, 2w,
40h or 1.5m. Durations are converted to working days and advanced over
the configured workdays (default Mon-Fri).

Example:
gantt generate --tasks my_project.yaml
gantt generate --tasks my_project.yaml --format both --today 2026-03-01
`,
	PreRunE: validateGenerateFlags,
	RunE:    runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&tasksFile, "tasks", "t", "tasks.yaml", "YAML task file")
	generateCmd.Flags().StringVarP(&outputBase, "output", "o", "", "Output base filename (default: derived from project name and date)")
	generateCmd.Flags().StringVarP(&formatFlag, "format", "f", "png", "Output format: png, pdf, svg or both (png+pdf)")
	generateCmd.Flags().StringVar(&todayFlag, "today", "", "Reference date YYYY-MM-DD for the today marker and past-due flags (default: current date)")
}

func validateGenerateFlags(cmd *cobra.Command, args []string) error {
	if _, err := render.ResolveFormats(formatFlag); err != nil {
		return err
	}
	if _, err := resolveToday(todayFlag); err != nil {
		return err
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	today, _ := resolveToday(todayFlag)
	formats, _ := render.ResolveFormats(formatFlag)

	resolved, err := loadAndResolve(tasksFile)
	if err != nil {
		return reportValidationErrors(err)
	}

	result, err := layout.Compose(resolved, today)
	if err != nil {
		return err
	}
	logger.Debugf("Laid out %d rows over %s to %s",
		len(result.Rows), result.Left.Format(dateLayout), result.Right.Format(dateLayout))

	paths, err := render.Render(result, render.Options{Output: outputBase, Formats: formats})
	if err != nil {
		return err
	}

	box := utils.NewBox(utils.SuccessMessage, fmt.Sprintf("Gantt chart for %q generated", resolved.Name))
	for _, path := range paths {
		box.AddBullet(path)
	}
	fmt.Println(box.Render())
	return nil
}
