package cmd

import (
	"fmt"
	"time"

	"github.com/maxkimambo/gantt/internal/errors"
	"github.com/maxkimambo/gantt/internal/logger"
	"github.com/maxkimambo/gantt/internal/schedule"
	"github.com/maxkimambo/gantt/internal/taskfile"
	"github.com/maxkimambo/gantt/internal/utils"
)

const dateLayout = "2006-01-02"

// loadAndResolve reads the task file and resolves every due date.
func loadAndResolve(path string) (*schedule.ResolvedProject, error) {
	project, err := taskfile.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %q: %d groups, workdays %s",
		project.Name, len(project.Groups), project.Workdays)
	return schedule.ResolveProject(project)
}

// resolveToday returns the chart's reference date: the --today override
// when given, otherwise local midnight. Dates in task files decode as
// UTC midnights, so the reference uses UTC for comparisons.
func resolveToday(flag string) (time.Time, error) {
	if flag != "" {
		today, err := time.Parse(dateLayout, flag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --today value %q: expected YYYY-MM-DD", flag)
		}
		return today, nil
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}

// reportValidationErrors prints each task failure in its own bullet and
// returns a terse error for cobra.
func reportValidationErrors(err error) error {
	if verrs, ok := errors.AsValidationErrors(err); ok {
		box := utils.NewBox(utils.ErrorMessage, "Task file validation failed")
		for _, e := range verrs {
			box.AddBullet(e.Error())
		}
		fmt.Println(box.Render())
		return fmt.Errorf("%d validation error(s)", len(verrs))
	}
	return err
}
