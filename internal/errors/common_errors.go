package errors

import (
	"fmt"
	"time"
)

// Common error codes
const (
	// Calendar error codes
	CodeCalendarInvalid = "001"

	// Duration error codes
	CodeDurationMalformed   = "001"
	CodeDurationNonPositive = "002"

	// Task error codes
	CodeTaskAmbiguousDue = "001"
	CodeTaskMissingDue   = "002"
	CodeTaskDateRange    = "003"
	CodeTaskBadID        = "004"
	CodeTaskBadField     = "005"

	// Schedule error codes
	CodeScheduleEmpty = "001"

	// Document error codes
	CodeDocumentParse   = "001"
	CodeDocumentMissing = "002"
)

const dateLayout = "2006-01-02"

// NewInvalidCalendarError creates an error for an empty or malformed workday set
func NewInvalidCalendarError(spec string) *ScheduleError {
	return newScheduleError(ErrorCategoryCalendar, CodeCalendarInvalid,
		fmt.Sprintf("invalid workday set %q", spec)).
		WithContext("valid tokens", "Mon Tue Wed Thu Fri Sat Sun (or M T W Th F Sa Su)")
}

// NewInvalidDurationError creates an error for an unparseable duration expression
func NewInvalidDurationError(taskID, expr string) *ScheduleError {
	err := newScheduleError(ErrorCategoryDuration, CodeDurationMalformed,
		fmt.Sprintf("invalid duration %q", expr)).
		WithContext("examples", "3d (days), 2w (weeks), 40h (hours), 1.5m (months)")
	err.TaskID = taskID
	return err
}

// NewNonPositiveDurationError creates an error for a zero or negative duration magnitude
func NewNonPositiveDurationError(taskID, expr string) *ScheduleError {
	err := newScheduleError(ErrorCategoryDuration, CodeDurationNonPositive,
		fmt.Sprintf("duration %q must be greater than zero", expr))
	err.TaskID = taskID
	return err
}

// NewAmbiguousDueDateError creates an error for a task with both due and duration
func NewAmbiguousDueDateError(taskID string) *ScheduleError {
	err := newScheduleError(ErrorCategoryTask, CodeTaskAmbiguousDue,
		"task has both 'due' and 'duration'; exactly one is allowed")
	err.TaskID = taskID
	return err
}

// NewMissingDueDateError creates an error for a task with neither due nor duration
func NewMissingDueDateError(taskID string) *ScheduleError {
	err := newScheduleError(ErrorCategoryTask, CodeTaskMissingDue,
		"task has neither 'due' nor 'duration'; exactly one is required")
	err.TaskID = taskID
	return err
}

// NewInvalidDateRangeError creates an error for a due date before the start date
func NewInvalidDateRangeError(taskID string, start, due time.Time) *ScheduleError {
	err := newScheduleError(ErrorCategoryTask, CodeTaskDateRange,
		"resolved due date precedes start date").
		WithContext("start", start.Format(dateLayout)).
		WithContext("due", due.Format(dateLayout))
	err.TaskID = taskID
	return err
}

// NewInvalidTaskIDError creates an error for a missing, duplicate or whitespace task id
func NewInvalidTaskIDError(taskID, reason string) *ScheduleError {
	err := newScheduleError(ErrorCategoryTask, CodeTaskBadID, reason)
	err.TaskID = taskID
	return err
}

// NewInvalidTaskFieldError creates an error for a malformed required task field
func NewInvalidTaskFieldError(taskID, field, value string) *ScheduleError {
	err := newScheduleError(ErrorCategoryTask, CodeTaskBadField,
		fmt.Sprintf("invalid value for %s: %q", field, value))
	err.TaskID = taskID
	return err
}

// NewEmptyScheduleError creates an error for a document with zero tasks
func NewEmptyScheduleError() *ScheduleError {
	return newScheduleError(ErrorCategorySchedule, CodeScheduleEmpty,
		"schedule contains no tasks")
}

// NewDocumentError creates an error for a task file that cannot be decoded
func NewDocumentError(message string, originalErr error) *ScheduleError {
	return newScheduleError(ErrorCategoryDocument, CodeDocumentParse, message).
		WithOriginalError(originalErr)
}

// NewMissingFieldError creates an error for a missing required document field
func NewMissingFieldError(field string) *ScheduleError {
	return newScheduleError(ErrorCategoryDocument, CodeDocumentMissing,
		fmt.Sprintf("required field %q is missing", field))
}
