package schedule

import "time"

// DueKind discriminates how a task's due date is specified.
type DueKind int

const (
	// DueExplicit means the document gave a concrete due date.
	DueExplicit DueKind = iota
	// DueComputed means the due date is derived from a duration
	// expression advanced over the working-day calendar.
	DueComputed
)

// DueSpec is the tagged exactly-one-of variant for a task's due date.
// Decoding constructs it only after the both-present/neither-present
// error cases have been rejected, so a DueSpec is always valid.
type DueSpec struct {
	Kind DueKind
	Date time.Time    // Kind == DueExplicit
	Expr DurationExpr // Kind == DueComputed
}

// ExplicitDue builds a DueSpec for a concrete date.
func ExplicitDue(date time.Time) DueSpec {
	return DueSpec{Kind: DueExplicit, Date: date}
}

// ComputedDue builds a DueSpec for a duration expression.
func ComputedDue(expr DurationExpr) DueSpec {
	return DueSpec{Kind: DueComputed, Expr: expr}
}

// Task is one row of work as authored in the document.
type Task struct {
	ID       string
	Name     string
	Assignee string
	Start    time.Time
	Due      DueSpec
}

// Group is an ordered sequence of tasks under one label. Order is
// significant: it is render order, and the group's index within the
// project determines its color.
type Group struct {
	Name  string
	Tasks []Task
}

// Project is the fully decoded input document. Constructed once,
// read-only thereafter.
type Project struct {
	Name     string
	Subtitle string
	// Start optionally anchors the chart's left edge. Zero means unset.
	Start    time.Time
	Workdays WorkdaySet
	Groups   []Group
}

// ResolvedTask is a task whose due date has been concretely computed
// and validated (Due is never before Start).
type ResolvedTask struct {
	ID       string
	Name     string
	Assignee string
	Start    time.Time
	Due      time.Time
	// FromDuration records whether Due was computed from a duration
	// expression rather than given explicitly.
	FromDuration bool
}

// ResolvedGroup mirrors Group with every task resolved.
type ResolvedGroup struct {
	Name  string
	Tasks []ResolvedTask
}

// ResolvedProject is the read-only projection consumed by the layout
// engine. It is discarded after one render pass.
type ResolvedProject struct {
	Name     string
	Subtitle string
	Start    time.Time
	Workdays WorkdaySet
	Groups   []ResolvedGroup
}

// TaskCount returns the total number of tasks across all groups.
func (rp *ResolvedProject) TaskCount() int {
	n := 0
	for _, g := range rp.Groups {
		n += len(g.Tasks)
	}
	return n
}
