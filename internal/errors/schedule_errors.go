package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCategory represents the category of error
type ErrorCategory string

const (
	// ErrorCategoryCalendar represents workday calendar errors
	ErrorCategoryCalendar ErrorCategory = "CALENDAR"
	// ErrorCategoryDuration represents duration expression errors
	ErrorCategoryDuration ErrorCategory = "DURATION"
	// ErrorCategoryTask represents per-task validation errors
	ErrorCategoryTask ErrorCategory = "TASK"
	// ErrorCategorySchedule represents whole-schedule errors
	ErrorCategorySchedule ErrorCategory = "SCHEDULE"
	// ErrorCategoryDocument represents task file structure errors
	ErrorCategoryDocument ErrorCategory = "DOCUMENT"
)

// ScheduleError represents a structured validation error with enough
// context to point the user at the offending task or field.
type ScheduleError struct {
	Category      ErrorCategory
	Code          string
	Message       string
	TaskID        string
	Context       map[string]interface{}
	OriginalError error
}

// Error implements the error interface
func (e *ScheduleError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s-%s: %s", e.Category, e.Code, e.Message))

	if e.TaskID != "" {
		sb.WriteString(fmt.Sprintf(" (task %q)", e.TaskID))
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		sb.WriteString(" [" + strings.Join(parts, " ") + "]")
	}

	if e.OriginalError != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.OriginalError))
	}

	return sb.String()
}

// Unwrap returns the original error for error chain compatibility
func (e *ScheduleError) Unwrap() error {
	return e.OriginalError
}

// WithContext adds a context key-value pair to the error
func (e *ScheduleError) WithContext(key string, value interface{}) *ScheduleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithOriginalError attaches the underlying error
func (e *ScheduleError) WithOriginalError(err error) *ScheduleError {
	e.OriginalError = err
	return e
}

func newScheduleError(category ErrorCategory, code, message string) *ScheduleError {
	return &ScheduleError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// IsCategory reports whether err is a ScheduleError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	se, ok := err.(*ScheduleError)
	return ok && se.Category == category
}
