package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type TaskType string

const (
	TaskTypeNormal TaskType = "normal"
	TaskTypeDaily  TaskType = "daily"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Categories is the fixed set of activity categories, in display order.
// The first entry doubles as the creation default.
var Categories = []string{"Work", "Business", "Gaming", "Study", "Workout"}

// DateLayout is the calendar-date format used for completion history entries
// and for the activity matrix.
const DateLayout = "2006-01-02"

// Task is one tracked activity. Exactly one completion signal is
// authoritative, selected by TaskType: Completed for normal tasks,
// CompletionHistory for daily ones. Reads must go through DoneEver /
// CompletedOn so the non-authoritative field is never consulted.
//
// ScheduledTime is kept as the RFC 3339 wire string rather than a time.Time:
// imported documents are accepted verbatim and must survive an export/import
// round trip unchanged, so parsing only happens where a time value is
// actually needed.
type Task struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	ScheduledTime     string       `json:"scheduledTime"`
	Completed         bool         `json:"completed"`
	TaskType          TaskType     `json:"taskType"`
	Priority          TaskPriority `json:"priority"`
	Category          string       `json:"category"`
	CompletionHistory []string     `json:"completionHistory,omitempty"`
}

// DoneEver reports whether the task has ever been completed: at least one
// history entry for daily tasks, the completed flag for normal ones.
func (t Task) DoneEver() bool {
	if t.TaskType == TaskTypeDaily {
		return len(t.CompletionHistory) > 0
	}
	return t.Completed
}

// CompletedOn reports whether the task contributed a completion on the given
// calendar date (DateLayout). A daily task counts iff the date is in its
// history; a normal task counts iff it is completed and scheduled that day.
func (t Task) CompletedOn(date string) bool {
	if t.TaskType == TaskTypeDaily {
		return slices.Contains(t.CompletionHistory, date)
	}
	return t.Completed && strings.HasPrefix(t.ScheduledTime, date)
}

// Clone returns a copy whose CompletionHistory shares no backing storage
// with the receiver.
func (t Task) Clone() Task {
	t.CompletionHistory = slices.Clone(t.CompletionHistory)
	return t
}

// CloneTasks deep-copies a task slice, histories included.
func CloneTasks(tasks []Task) []Task {
	cloned := make([]Task, len(tasks))
	for i, t := range tasks {
		cloned[i] = t.Clone()
	}
	return cloned
}

// ScheduledAt parses the scheduled time for ordering purposes. Unparsable
// values sort as the zero time instead of failing.
func (t Task) ScheduledAt() time.Time {
	ts, err := time.Parse(time.RFC3339, t.ScheduledTime)
	if err != nil {
		return time.Time{}
	}
	return ts
}

var scheduledTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseScheduledTime accepts an RFC 3339 timestamp or the datetime-local
// shapes produced by browser inputs.
func ParseScheduledTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range scheduledTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported scheduled time %q", value)
}

type CreateTaskInput struct {
	Title         string
	ScheduledTime string
	TaskType      TaskType
	Priority      TaskPriority
	Category      string
}
