package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxkimambo/gantt/internal/errors"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func TestParseWorkdays(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected string
		wantErr  bool
	}{
		{
			name:     "standard five day week",
			spec:     "Mon,Tue,Wed,Thu,Fri",
			expected: "Mon,Tue,Wed,Thu,Fri",
		},
		{
			name:     "short tokens",
			spec:     "M,T,W,Th,F",
			expected: "Mon,Tue,Wed,Thu,Fri",
		},
		{
			name:     "canonical order regardless of input order",
			spec:     "F,M,W",
			expected: "Mon,Wed,Fri",
		},
		{
			name:     "case insensitive with spaces",
			spec:     " sat , SUN ",
			expected: "Sat,Sun",
		},
		{
			name:     "duplicate tokens collapse",
			spec:     "Mon,mon,M",
			expected: "Mon",
		},
		{
			name:    "unknown token",
			spec:    "Mon,Funday",
			wantErr: true,
		},
		{
			name:    "empty spec",
			spec:    "",
			wantErr: true,
		},
		{
			name:    "only separators",
			spec:    ", ,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := ParseWorkdays(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCategory(err, errors.ErrorCategoryCalendar))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ws.String())
		})
	}
}

func TestDefaultWorkdays(t *testing.T) {
	ws := DefaultWorkdays()

	assert.Equal(t, 5, ws.Len())
	assert.Equal(t, "Mon,Tue,Wed,Thu,Fri", ws.String())
	assert.True(t, ws.Contains(time.Monday))
	assert.False(t, ws.Contains(time.Saturday))
	assert.False(t, ws.Contains(time.Sunday))
}

func TestIsWorkingDay(t *testing.T) {
	ws := DefaultWorkdays()

	assert.True(t, ws.IsWorkingDay(mustDate(t, "2026-02-02")))  // Monday
	assert.False(t, ws.IsWorkingDay(mustDate(t, "2026-02-07"))) // Saturday
	assert.False(t, ws.IsWorkingDay(mustDate(t, "2026-02-08"))) // Sunday
}

func TestAdvanceWorkingDays(t *testing.T) {
	fiveDay := DefaultWorkdays()
	everyDay, err := ParseWorkdays("Mon,Tue,Wed,Thu,Fri,Sat,Sun")
	require.NoError(t, err)

	tests := []struct {
		name     string
		workdays WorkdaySet
		start    string
		count    int
		expected string
	}{
		{
			name:     "zero days returns start unchanged",
			workdays: fiveDay,
			start:    "2026-02-07", // Saturday, non-working
			count:    0,
			expected: "2026-02-07",
		},
		{
			name:     "five working days from Monday skips the weekend",
			workdays: fiveDay,
			start:    "2026-02-02",
			count:    5,
			expected: "2026-02-09",
		},
		{
			name:     "one working day from Friday lands on Monday",
			workdays: fiveDay,
			start:    "2026-02-06",
			count:    1,
			expected: "2026-02-09",
		},
		{
			name:     "seven day week never skips",
			workdays: everyDay,
			start:    "2026-02-02",
			count:    7,
			expected: "2026-02-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.workdays.AdvanceWorkingDays(mustDate(t, tt.start), tt.count)
			assert.Equal(t, mustDate(t, tt.expected), result)
		})
	}
}
