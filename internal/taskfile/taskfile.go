// Package taskfile loads and validates the YAML task document and turns
// it into the schedule package's read-only model.
package taskfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maxkimambo/gantt/internal/errors"
	"github.com/maxkimambo/gantt/internal/schedule"
)

const dateLayout = "2006-01-02"

type document struct {
	Project projectSection `yaml:"project"`
	Groups  []groupSection `yaml:"groups"`
}

type projectSection struct {
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
	Start    string `yaml:"start"`
	Workdays string `yaml:"workdays"`
}

type groupSection struct {
	Name  string        `yaml:"name"`
	Tasks []taskSection `yaml:"tasks"`
}

type taskSection struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Assignee string `yaml:"assignee"`
	Start    string `yaml:"start"`
	Due      string `yaml:"due"`
	Duration string `yaml:"duration"`
}

// Load reads and parses a task file from disk.
func Load(path string) (*schedule.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a task document and validates its structure. Field
// names are checked strictly, so a typo like "durration" is rejected
// instead of silently producing a task with no due date.
func Parse(data []byte) (*schedule.Project, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.NewDocumentError("task file is not valid YAML", err)
	}

	if doc.Project.Name == "" {
		return nil, errors.NewMissingFieldError("project.name")
	}

	project := &schedule.Project{
		Name:     doc.Project.Name,
		Subtitle: doc.Project.Subtitle,
	}

	if doc.Project.Start != "" {
		start, err := time.Parse(dateLayout, doc.Project.Start)
		if err != nil {
			return nil, errors.NewDocumentError(
				fmt.Sprintf("invalid project start date %q", doc.Project.Start), err)
		}
		project.Start = start
	}

	if doc.Project.Workdays == "" {
		project.Workdays = schedule.DefaultWorkdays()
	} else {
		workdays, err := schedule.ParseWorkdays(doc.Project.Workdays)
		if err != nil {
			return nil, err
		}
		project.Workdays = workdays
	}

	var errs errors.ValidationErrors
	seen := make(map[string]bool)
	for _, g := range doc.Groups {
		group := schedule.Group{Name: g.Name}
		for _, t := range g.Tasks {
			task, err := decodeTask(t, seen)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			group.Tasks = append(group.Tasks, task)
		}
		project.Groups = append(project.Groups, group)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return project, nil
}

func decodeTask(t taskSection, seen map[string]bool) (schedule.Task, *errors.ScheduleError) {
	if err := ValidateTaskID(t.ID, seen); err != nil {
		return schedule.Task{}, err
	}
	seen[t.ID] = true

	if t.Name == "" {
		return schedule.Task{}, errors.NewInvalidTaskFieldError(t.ID, "name", t.Name)
	}

	start, err := time.Parse(dateLayout, t.Start)
	if err != nil {
		return schedule.Task{}, errors.NewInvalidTaskFieldError(t.ID, "start", t.Start).
			WithOriginalError(err)
	}

	due, specErr := decodeDueSpec(t)
	if specErr != nil {
		return schedule.Task{}, specErr
	}

	return schedule.Task{
		ID:       t.ID,
		Name:     t.Name,
		Assignee: t.Assignee,
		Start:    start,
		Due:      due,
	}, nil
}

// decodeDueSpec enforces the exactly-one-of rule for due vs duration and
// builds the tagged variant, so downstream resolution never sees a task
// with both or neither.
func decodeDueSpec(t taskSection) (schedule.DueSpec, *errors.ScheduleError) {
	switch {
	case t.Due != "" && t.Duration != "":
		return schedule.DueSpec{}, errors.NewAmbiguousDueDateError(t.ID)
	case t.Due == "" && t.Duration == "":
		return schedule.DueSpec{}, errors.NewMissingDueDateError(t.ID)
	case t.Due != "":
		due, err := time.Parse(dateLayout, t.Due)
		if err != nil {
			return schedule.DueSpec{}, errors.NewInvalidTaskFieldError(t.ID, "due", t.Due).
				WithOriginalError(err)
		}
		return schedule.ExplicitDue(due), nil
	default:
		expr, err := schedule.ParseDurationExpr(t.ID, t.Duration)
		if err != nil {
			return schedule.DueSpec{}, err.(*errors.ScheduleError)
		}
		return schedule.ComputedDue(expr), nil
	}
}
