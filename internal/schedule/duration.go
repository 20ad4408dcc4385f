package schedule

import (
	"math"
	"regexp"
	"strconv"

	"github.com/maxkimambo/gantt/internal/errors"
)

// DurationUnit is the unit suffix of a duration expression.
type DurationUnit byte

const (
	UnitHour  DurationUnit = 'h'
	UnitDay   DurationUnit = 'd'
	UnitWeek  DurationUnit = 'w'
	UnitMonth DurationUnit = 'm'
)

const (
	// hoursPerDay is the fixed length of a working day. Not configurable.
	hoursPerDay = 8.0
	// weeksPerMonth approximates average working days per month as a
	// multiple of the configured week length (21.7 for a 5-day week).
	// Downstream chart output depends on this exact factor; do not
	// "correct" it.
	weeksPerMonth = 4.345
)

// units are case-sensitive: lowercase only
var durationPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([hdwm])$`)

// DurationExpr is a parsed <number><unit> duration token, e.g. "3d",
// "2w", "40h", "1.5m". It is not retained beyond resolution.
type DurationExpr struct {
	Magnitude float64
	Unit      DurationUnit
}

// ParseDurationExpr parses a duration token. The task id is carried into
// any error so the caller can surface an actionable message.
func ParseDurationExpr(taskID, expr string) (DurationExpr, error) {
	m := durationPattern.FindStringSubmatch(expr)
	if m == nil {
		return DurationExpr{}, errors.NewInvalidDurationError(taskID, expr)
	}
	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DurationExpr{}, errors.NewInvalidDurationError(taskID, expr).
			WithOriginalError(err)
	}
	if magnitude <= 0 {
		return DurationExpr{}, errors.NewNonPositiveDurationError(taskID, expr)
	}
	return DurationExpr{Magnitude: magnitude, Unit: DurationUnit(m[2][0])}, nil
}

// WorkingDays converts the expression into a whole number of working
// days for a week of the given length. The result is rounded up, never
// down, so a task never appears shorter than its stated duration.
func (d DurationExpr) WorkingDays(workdaysPerWeek int) int {
	week := float64(workdaysPerWeek)
	var days float64
	switch d.Unit {
	case UnitHour:
		days = d.Magnitude / hoursPerDay
	case UnitDay:
		days = d.Magnitude
	case UnitWeek:
		days = d.Magnitude * week
	case UnitMonth:
		days = d.Magnitude * week * weeksPerMonth
	}
	return int(math.Ceil(days))
}

// String renders the expression back in its token form.
func (d DurationExpr) String() string {
	return strconv.FormatFloat(d.Magnitude, 'f', -1, 64) + string(d.Unit)
}
