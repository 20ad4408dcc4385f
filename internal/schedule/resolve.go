package schedule

import (
	"github.com/maxkimambo/gantt/internal/errors"
)

// ResolveProject computes a concrete due date for every task in the
// project. Each task is resolved independently; no cross-task ordering
// or dependency is consulted. All failing tasks are reported together,
// and a project with any failure yields no partial output.
func ResolveProject(p *Project) (*ResolvedProject, error) {
	rp := &ResolvedProject{
		Name:     p.Name,
		Subtitle: p.Subtitle,
		Start:    p.Start,
		Workdays: p.Workdays,
		Groups:   make([]ResolvedGroup, 0, len(p.Groups)),
	}

	var errs errors.ValidationErrors
	for _, group := range p.Groups {
		rg := ResolvedGroup{
			Name:  group.Name,
			Tasks: make([]ResolvedTask, 0, len(group.Tasks)),
		}
		for _, task := range group.Tasks {
			resolved, err := resolveTask(task, p.Workdays)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			rg.Tasks = append(rg.Tasks, resolved)
		}
		rp.Groups = append(rp.Groups, rg)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rp, nil
}

func resolveTask(t Task, workdays WorkdaySet) (ResolvedTask, *errors.ScheduleError) {
	resolved := ResolvedTask{
		ID:       t.ID,
		Name:     t.Name,
		Assignee: t.Assignee,
		Start:    t.Start,
	}

	switch t.Due.Kind {
	case DueExplicit:
		resolved.Due = t.Due.Date
	case DueComputed:
		days := t.Due.Expr.WorkingDays(workdays.Len())
		resolved.Due = workdays.AdvanceWorkingDays(t.Start, days)
		resolved.FromDuration = true
	}

	// Equal start and due is a valid zero-length task.
	if resolved.Due.Before(resolved.Start) {
		return ResolvedTask{}, errors.NewInvalidDateRangeError(t.ID, resolved.Start, resolved.Due)
	}
	return resolved, nil
}
