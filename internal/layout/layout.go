// Package layout maps a resolved project onto chart coordinates: a
// linear time axis, integer row indices, palette colors and the
// annotations a renderer needs. It produces hints only; it draws
// nothing, and it never consults the wall clock.
package layout

import (
	"fmt"
	"time"

	"github.com/maxkimambo/gantt/internal/errors"
	"github.com/maxkimambo/gantt/internal/schedule"
)

// RowKind discriminates chart rows.
type RowKind int

const (
	// RowGroup is a group label row separating task blocks.
	RowGroup RowKind = iota
	// RowTask is a task bar row.
	RowTask
)

// TaskBar carries the rendering hints for one task's time span.
type TaskBar struct {
	ID       string
	Assignee string
	Start    time.Time
	Due      time.Time
	// XStart and XEnd are offsets in calendar days from the left edge.
	XStart float64
	XEnd   float64
	// PastDue requests the dimmed + hatched treatment.
	PastDue bool
	// EndLabel is anchored to the right of the bar.
	EndLabel string
}

// Row is one horizontal slot of the chart, top to bottom.
type Row struct {
	Kind       RowKind
	Y          int
	Label      string
	ColorIndex int
	Task       *TaskBar // nil for group rows
}

// Tick is a weekly axis tick, always on a Monday.
type Tick struct {
	X     float64
	Date  time.Time
	Label string
}

// Marker is the vertical today line.
type Marker struct {
	X     float64
	Date  time.Time
	Label string
}

// LegendEntry pairs a group label with its palette slot.
type LegendEntry struct {
	Label      string
	ColorIndex int
}

// Result is the full set of layout hints for one render pass.
type Result struct {
	Title    string
	Subtitle string
	// Left and Right bound the time range. X coordinates are calendar
	// days measured from Left.
	Left  time.Time
	Right time.Time
	Rows  []Row
	Ticks []Tick
	// Today is nil when the reference date falls outside the range.
	Today     *Marker
	Legend    []LegendEntry
	Generated time.Time
}

// X converts a date to its offset on the time axis.
func (r *Result) X(date time.Time) float64 {
	return date.Sub(r.Left).Hours() / 24
}

// Compose lays out a resolved project against the supplied reference
// date. The date is an explicit parameter so identical inputs always
// produce identical output.
func Compose(rp *schedule.ResolvedProject, today time.Time) (*Result, error) {
	if rp.TaskCount() == 0 {
		return nil, errors.NewEmptyScheduleError()
	}

	var earliestStart, latestDue time.Time
	for _, g := range rp.Groups {
		for _, t := range g.Tasks {
			if earliestStart.IsZero() || t.Start.Before(earliestStart) {
				earliestStart = t.Start
			}
			if latestDue.IsZero() || t.Due.After(latestDue) {
				latestDue = t.Due
			}
		}
	}

	left := rp.Start
	if left.IsZero() {
		left = earliestStart.AddDate(0, 0, -5)
	}

	res := &Result{
		Title:     rp.Name,
		Subtitle:  rp.Subtitle,
		Left:      left,
		Right:     latestDue,
		Generated: today,
	}

	y := 0
	for gi, group := range rp.Groups {
		color := ColorIndex(gi)
		res.Rows = append(res.Rows, Row{
			Kind:       RowGroup,
			Y:          y,
			Label:      group.Name,
			ColorIndex: color,
		})
		res.Legend = append(res.Legend, LegendEntry{Label: group.Name, ColorIndex: color})
		y++

		for _, task := range group.Tasks {
			bar := &TaskBar{
				ID:       task.ID,
				Assignee: task.Assignee,
				Start:    task.Start,
				Due:      task.Due,
				XStart:   res.X(task.Start),
				XEnd:     res.X(task.Due),
				PastDue:  task.Due.Before(today),
				EndLabel: endLabel(task),
			}
			res.Rows = append(res.Rows, Row{
				Kind:       RowTask,
				Y:          y,
				Label:      task.Name,
				ColorIndex: color,
				Task:       bar,
			})
			y++
		}
	}

	res.Ticks = mondayTicks(res, left, latestDue)

	if !today.Before(left) && !today.After(latestDue) {
		res.Today = &Marker{
			X:     res.X(today),
			Date:  today,
			Label: MonthDay(today),
		}
	}

	return res, nil
}

// mondayTicks places a tick on every Monday in [left, right]. Ticks are
// anchored to calendar Mondays, not to the chart's left edge.
func mondayTicks(res *Result, left, right time.Time) []Tick {
	offset := (int(time.Monday) - int(left.Weekday()) + 7) % 7
	var ticks []Tick
	for d := left.AddDate(0, 0, offset); !d.After(right); d = d.AddDate(0, 0, 7) {
		ticks = append(ticks, Tick{
			X:     res.X(d),
			Date:  d,
			Label: d.Format("Jan 02"),
		})
	}
	return ticks
}

func endLabel(task schedule.ResolvedTask) string {
	label := MonthDay(task.Due)
	if task.Assignee != "" {
		label += "  " + task.Assignee
	}
	return label
}

// MonthDay formats a date as "Jan 2" without a leading zero on the day.
func MonthDay(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Format("Jan"), t.Day())
}
