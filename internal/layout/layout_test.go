package layout

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxkimambo/gantt/internal/errors"
	"github.com/maxkimambo/gantt/internal/schedule"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func resolvedProject(t *testing.T, groups ...schedule.ResolvedGroup) *schedule.ResolvedProject {
	t.Helper()
	return &schedule.ResolvedProject{
		Name:     "Test Project",
		Workdays: schedule.DefaultWorkdays(),
		Groups:   groups,
	}
}

func oneTask(t *testing.T, id, start, due string) schedule.ResolvedGroup {
	t.Helper()
	return schedule.ResolvedGroup{
		Name: "Group " + id,
		Tasks: []schedule.ResolvedTask{{
			ID:    id,
			Name:  "Task " + id,
			Start: date(t, start),
			Due:   date(t, due),
		}},
	}
}

func TestComposeRowOrder(t *testing.T) {
	rp := resolvedProject(t,
		schedule.ResolvedGroup{
			Name: "Discovery",
			Tasks: []schedule.ResolvedTask{
				{ID: "a", Name: "A", Start: date(t, "2026-02-02"), Due: date(t, "2026-02-06")},
				{ID: "b", Name: "B", Start: date(t, "2026-02-04"), Due: date(t, "2026-02-10")},
			},
		},
		schedule.ResolvedGroup{
			Name: "Build",
			Tasks: []schedule.ResolvedTask{
				{ID: "c", Name: "C", Start: date(t, "2026-02-09"), Due: date(t, "2026-02-13")},
			},
		},
	)

	res, err := Compose(rp, date(t, "2026-02-02"))
	require.NoError(t, err)

	require.Len(t, res.Rows, 5)
	kinds := []RowKind{RowGroup, RowTask, RowTask, RowGroup, RowTask}
	labels := []string{"Discovery", "A", "B", "Build", "C"}
	for i, row := range res.Rows {
		assert.Equal(t, kinds[i], row.Kind, "row %d kind", i)
		assert.Equal(t, labels[i], row.Label, "row %d label", i)
		assert.Equal(t, i, row.Y, "row indices are consecutive in document order")
	}

	// tasks inherit their group's color
	assert.Equal(t, res.Rows[0].ColorIndex, res.Rows[1].ColorIndex)
	assert.Equal(t, res.Rows[3].ColorIndex, res.Rows[4].ColorIndex)
	assert.NotEqual(t, res.Rows[0].ColorIndex, res.Rows[3].ColorIndex)
}

func TestComposePaletteCycles(t *testing.T) {
	var groups []schedule.ResolvedGroup
	for i := 0; i < 9; i++ {
		groups = append(groups, oneTask(t, fmt.Sprintf("t%d", i), "2026-02-02", "2026-02-06"))
	}

	res, err := Compose(resolvedProject(t, groups...), date(t, "2026-02-02"))
	require.NoError(t, err)

	var groupRows []Row
	for _, row := range res.Rows {
		if row.Kind == RowGroup {
			groupRows = append(groupRows, row)
		}
	}
	require.Len(t, groupRows, 9)

	for i, row := range groupRows {
		assert.Equal(t, i%8, row.ColorIndex)
	}
	assert.Equal(t, groupRows[0].ColorIndex, groupRows[8].ColorIndex,
		"groups 0 and 8 share a palette slot")
}

func TestComposeTimeRange(t *testing.T) {
	t.Run("anchored left edge", func(t *testing.T) {
		rp := resolvedProject(t, oneTask(t, "a", "2026-02-02", "2026-02-20"))
		rp.Start = date(t, "2026-01-26")

		res, err := Compose(rp, date(t, "2026-02-02"))
		require.NoError(t, err)

		assert.Equal(t, date(t, "2026-01-26"), res.Left)
		assert.Equal(t, date(t, "2026-02-20"), res.Right)
	})

	t.Run("default left edge is five days before the earliest start", func(t *testing.T) {
		rp := resolvedProject(t,
			oneTask(t, "a", "2026-02-09", "2026-02-20"),
			oneTask(t, "b", "2026-02-04", "2026-02-10"),
		)

		res, err := Compose(rp, date(t, "2026-02-02"))
		require.NoError(t, err)

		assert.Equal(t, date(t, "2026-01-30"), res.Left)
		assert.Equal(t, date(t, "2026-02-20"), res.Right)
	})
}

func TestComposeXMapping(t *testing.T) {
	rp := resolvedProject(t, oneTask(t, "a", "2026-02-02", "2026-02-09"))
	rp.Start = date(t, "2026-01-26")

	res, err := Compose(rp, date(t, "2026-02-02"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.X(res.Left))
	bar := res.Rows[1].Task
	require.NotNil(t, bar)
	assert.Equal(t, 7.0, bar.XStart)
	assert.Equal(t, 14.0, bar.XEnd)
}

func TestComposePastDueBoundary(t *testing.T) {
	today := date(t, "2026-02-10")
	rp := resolvedProject(t,
		oneTask(t, "due-today", "2026-02-02", "2026-02-10"),
		oneTask(t, "due-yesterday", "2026-02-02", "2026-02-09"),
		oneTask(t, "due-tomorrow", "2026-02-02", "2026-02-11"),
	)

	res, err := Compose(rp, today)
	require.NoError(t, err)

	byID := map[string]*TaskBar{}
	for _, row := range res.Rows {
		if row.Kind == RowTask {
			byID[row.Task.ID] = row.Task
		}
	}

	assert.False(t, byID["due-today"].PastDue, "due today is not past due")
	assert.True(t, byID["due-yesterday"].PastDue, "one day earlier is past due")
	assert.False(t, byID["due-tomorrow"].PastDue)
}

func TestComposeTodayMarker(t *testing.T) {
	rp := resolvedProject(t, oneTask(t, "a", "2026-02-02", "2026-02-20"))
	rp.Start = date(t, "2026-01-26")

	t.Run("inside the range", func(t *testing.T) {
		res, err := Compose(rp, date(t, "2026-02-10"))
		require.NoError(t, err)
		require.NotNil(t, res.Today)
		assert.Equal(t, res.X(date(t, "2026-02-10")), res.Today.X)
		assert.Equal(t, "Feb 10", res.Today.Label)
	})

	t.Run("before the range", func(t *testing.T) {
		res, err := Compose(rp, date(t, "2026-01-01"))
		require.NoError(t, err)
		assert.Nil(t, res.Today)
	})

	t.Run("after the range", func(t *testing.T) {
		res, err := Compose(rp, date(t, "2026-03-15"))
		require.NoError(t, err)
		assert.Nil(t, res.Today)
	})

	t.Run("on the edges", func(t *testing.T) {
		res, err := Compose(rp, date(t, "2026-01-26"))
		require.NoError(t, err)
		assert.NotNil(t, res.Today)

		res, err = Compose(rp, date(t, "2026-02-20"))
		require.NoError(t, err)
		assert.NotNil(t, res.Today)
	})
}

func TestComposeMondayTicks(t *testing.T) {
	// left edge is a Thursday; ticks must still fall on calendar Mondays
	rp := resolvedProject(t, oneTask(t, "a", "2026-02-05", "2026-02-24"))
	rp.Start = date(t, "2026-02-05")

	res, err := Compose(rp, date(t, "2026-02-05"))
	require.NoError(t, err)

	require.NotEmpty(t, res.Ticks)
	expected := []string{"2026-02-09", "2026-02-16", "2026-02-23"}
	require.Len(t, res.Ticks, len(expected))
	for i, tick := range res.Ticks {
		assert.Equal(t, time.Monday, tick.Date.Weekday())
		assert.Equal(t, date(t, expected[i]), tick.Date)
		assert.Equal(t, res.X(tick.Date), tick.X)
	}
	assert.Equal(t, "Feb 09", res.Ticks[0].Label)
}

func TestComposeMondayLeftEdgeIsTicked(t *testing.T) {
	rp := resolvedProject(t, oneTask(t, "a", "2026-02-02", "2026-02-06"))
	rp.Start = date(t, "2026-02-02") // a Monday

	res, err := Compose(rp, date(t, "2026-02-02"))
	require.NoError(t, err)

	require.NotEmpty(t, res.Ticks)
	assert.Equal(t, 0.0, res.Ticks[0].X)
}

func TestComposeEndLabels(t *testing.T) {
	rp := resolvedProject(t, schedule.ResolvedGroup{
		Name: "Build",
		Tasks: []schedule.ResolvedTask{
			{ID: "a", Name: "A", Assignee: "Dana", Start: date(t, "2026-02-02"), Due: date(t, "2026-02-09")},
			{ID: "b", Name: "B", Start: date(t, "2026-02-02"), Due: date(t, "2026-02-09")},
		},
	})

	res, err := Compose(rp, date(t, "2026-02-02"))
	require.NoError(t, err)

	assert.Equal(t, "Feb 9  Dana", res.Rows[1].Task.EndLabel)
	assert.Equal(t, "Feb 9", res.Rows[2].Task.EndLabel)
}

func TestComposeEmptySchedule(t *testing.T) {
	tests := []struct {
		name   string
		groups []schedule.ResolvedGroup
	}{
		{name: "no groups", groups: nil},
		{name: "groups without tasks", groups: []schedule.ResolvedGroup{{Name: "Empty"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(resolvedProject(t, tt.groups...), date(t, "2026-02-02"))
			require.Error(t, err)
			assert.True(t, errors.IsCategory(err, errors.ErrorCategorySchedule))
		})
	}
}

func TestComposeLegend(t *testing.T) {
	rp := resolvedProject(t,
		oneTask(t, "a", "2026-02-02", "2026-02-06"),
		oneTask(t, "b", "2026-02-02", "2026-02-06"),
	)

	res, err := Compose(rp, date(t, "2026-02-02"))
	require.NoError(t, err)

	require.Len(t, res.Legend, 2)
	assert.Equal(t, "Group a", res.Legend[0].Label)
	assert.Equal(t, 0, res.Legend[0].ColorIndex)
	assert.Equal(t, 1, res.Legend[1].ColorIndex)
}
