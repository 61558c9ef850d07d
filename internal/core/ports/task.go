package ports

import (
	"context"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/analytics"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
)

type TaskService interface {
	// ListTasks returns the task set in timeline order.
	ListTasks(ctx context.Context) []domain.Task

	// CreateTask registers a new task. Empty titles and unparsable
	// scheduled times are rejected with domain.ErrInvalidTaskInput.
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)

	// ToggleTask flips the completion state of the matching task and
	// returns the updated set in timeline order. Unknown ids are a no-op.
	ToggleTask(ctx context.Context, id string) []domain.Task

	// DeleteTask removes the matching task. Unknown ids are a no-op.
	DeleteTask(ctx context.Context, id string)

	Stats(ctx context.Context) analytics.Summary
	ActivityMatrix(ctx context.Context) []analytics.ActivityDay

	// ExportSnapshot produces the portable backup document without
	// touching in-memory state.
	ExportSnapshot(ctx context.Context) domain.Snapshot

	// ImportSnapshot replaces the entire task set with the document's
	// tasks array and reports how many were imported. A document without a
	// top-level tasks array fails with domain.ErrInvalidSnapshot and
	// leaves state untouched.
	ImportSnapshot(ctx context.Context, raw []byte) (int, error)
}

// StateStore is the durable backing store for the session's task set.
type StateStore interface {
	// Load reads the stored envelope. It never fails: an absent or
	// unparsable record degrades to the first-run empty state.
	Load(ctx context.Context) domain.AppData

	Save(ctx context.Context, data domain.AppData) error

	Ping(ctx context.Context) error
}

// Advisor forwards the task set plus a free-text prompt to the coaching
// model and returns its advice.
type Advisor interface {
	Advise(ctx context.Context, prompt string, tasks []domain.Task) (string, error)
}
