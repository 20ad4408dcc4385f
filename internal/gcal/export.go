package gcal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/maxkimambo/gantt/internal/logger"
	"github.com/maxkimambo/gantt/internal/schedule"
)

// taskIDProperty keys events to task ids so repeated exports update
// instead of duplicating.
const taskIDProperty = "gantt-task-id"

const dateLayout = "2006-01-02"

// Exporter writes resolved tasks to one Google Calendar.
type Exporter struct {
	srv        *calendar.Service
	calendarID string
}

// ExportStats summarizes one export run.
type ExportStats struct {
	Created int
	Updated int
}

// NewExporter authenticates and binds to the calendar with the given
// summary, creating it when it does not exist.
func NewExporter(ctx context.Context, calendarName string) (*Exporter, error) {
	client, err := httpClient(ctx, []string{
		calendar.CalendarEventsScope,
		calendar.CalendarReadonlyScope,
		calendar.CalendarScope,
	})
	if err != nil {
		return nil, err
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %w", err)
	}

	list, err := srv.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list calendars: %w", err)
	}

	var calendarID string
	for _, item := range list.Items {
		if item.Summary == calendarName {
			calendarID = item.Id
			break
		}
	}
	if calendarID == "" {
		logger.Infof("Calendar %q not found, creating it", calendarName)
		created, err := srv.Calendars.Insert(&calendar.Calendar{Summary: calendarName}).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to create calendar %q: %w", calendarName, err)
		}
		calendarID = created.Id
	}

	return &Exporter{srv: srv, calendarID: calendarID}, nil
}

// ExportProject upserts one all-day event per task on its due date.
func (e *Exporter) ExportProject(ctx context.Context, rp *schedule.ResolvedProject) (ExportStats, error) {
	var stats ExportStats
	for _, group := range rp.Groups {
		for _, task := range group.Tasks {
			updated, err := e.upsertTask(ctx, group.Name, task)
			if err != nil {
				return stats, fmt.Errorf("failed to export task %q: %w", task.ID, err)
			}
			if updated {
				stats.Updated++
			} else {
				stats.Created++
			}
		}
	}
	return stats, nil
}

func (e *Exporter) upsertTask(ctx context.Context, groupName string, task schedule.ResolvedTask) (updated bool, err error) {
	event := eventForTask(groupName, task)

	existing, err := e.findTaskEvent(ctx, task.ID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		_, err = e.srv.Events.Update(e.calendarID, existing.Id, event).Context(ctx).Do()
		return true, err
	}
	_, err = e.srv.Events.Insert(e.calendarID, event).Context(ctx).Do()
	return false, err
}

func (e *Exporter) findTaskEvent(ctx context.Context, taskID string) (*calendar.Event, error) {
	events, err := e.srv.Events.List(e.calendarID).
		PrivateExtendedProperty(taskIDProperty + "=" + taskID).
		MaxResults(1).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to query events: %w", err)
	}
	if len(events.Items) == 0 {
		return nil, nil
	}
	return events.Items[0], nil
}

func eventForTask(groupName string, task schedule.ResolvedTask) *calendar.Event {
	description := fmt.Sprintf("Group: %s", groupName)
	if task.Assignee != "" {
		description += fmt.Sprintf("\nAssignee: %s", task.Assignee)
	}
	// All-day events use an exclusive end date.
	end := task.Due.Add(24 * time.Hour)

	return &calendar.Event{
		Summary:     fmt.Sprintf("%s due: %s", task.ID, task.Name),
		Description: description,
		Start:       &calendar.EventDateTime{Date: task.Due.Format(dateLayout)},
		End:         &calendar.EventDateTime{Date: end.Format(dateLayout)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{taskIDProperty: task.ID},
		},
	}
}
