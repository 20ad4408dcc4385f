package taskfile

import (
	"strings"
	"unicode"

	"github.com/maxkimambo/gantt/internal/errors"
)

// ValidateTaskID checks that a task id is present, free of whitespace
// and unique within the document.
func ValidateTaskID(id string, seen map[string]bool) *errors.ScheduleError {
	if id == "" {
		return errors.NewInvalidTaskIDError(id, "task id cannot be empty")
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return errors.NewInvalidTaskIDError(id, "task id cannot contain whitespace")
	}
	if seen[id] {
		return errors.NewInvalidTaskIDError(id, "task id is not unique within the document")
	}
	return nil
}
