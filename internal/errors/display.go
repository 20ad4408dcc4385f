package errors

import (
	"fmt"
	"strings"
)

// ValidationErrors aggregates per-task validation failures so a single
// resolve pass can report every bad task instead of stopping at the first.
type ValidationErrors []*ScheduleError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return v[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:", len(v)))
	for _, e := range v {
		sb.WriteString("\n  " + e.Error())
	}
	return sb.String()
}

// OrNil returns the aggregate as an error, or nil when empty.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsValidationErrors extracts the individual failures from an error, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	switch e := err.(type) {
	case ValidationErrors:
		return e, true
	case *ScheduleError:
		return ValidationErrors{e}, true
	}
	return nil, false
}

// DisplayErrorSummary provides a brief summary of the error for logs
func DisplayErrorSummary(err error) string {
	if se, ok := err.(*ScheduleError); ok {
		return fmt.Sprintf("%s-%s: %s", se.Category, se.Code, se.Message)
	}

	errStr := err.Error()
	if len(errStr) > 100 {
		return errStr[:97] + "..."
	}
	return errStr
}
