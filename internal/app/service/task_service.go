package service

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/analytics"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
)

// TaskService owns the session's task set. Every mutation runs atomically
// under the mutex and then writes the full envelope through the store;
// persistence failures are logged and swallowed so they never fail the
// caller.
type TaskService struct {
	mu    sync.Mutex
	store ports.StateStore
	tasks []domain.Task

	// now is read once per operation so a toggle or analytics pass never
	// straddles a day boundary.
	now func() time.Time
}

func NewTaskService(store ports.StateStore) *TaskService {
	return &TaskService{
		store: store,
		tasks: []domain.Task{},
		now:   time.Now,
	}
}

// Restore loads the durable state into memory. Called once at startup.
func (s *TaskService) Restore(ctx context.Context) {
	data := s.store.Load(ctx)
	s.mu.Lock()
	s.tasks = data.Tasks
	s.mu.Unlock()
	zap.L().Info("restored app state", zap.Int("tasks", len(data.Tasks)))
}

func (s *TaskService) ListTasks(ctx context.Context) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.SortTimeline(s.tasks)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}
	scheduled, err := domain.ParseScheduledTime(input.ScheduledTime)
	if err != nil {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}

	taskType := input.TaskType
	if taskType == "" {
		taskType = domain.TaskTypeNormal
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	category := input.Category
	if category == "" {
		category = domain.Categories[0]
	}

	task := domain.Task{
		ID:                uuid.NewString(),
		Title:             title,
		ScheduledTime:     scheduled.UTC().Format(time.RFC3339),
		Completed:         false,
		TaskType:          taskType,
		Priority:          priority,
		Category:          category,
		CompletionHistory: []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	s.persistLocked(ctx)
	return task, nil
}

func (s *TaskService) ToggleTask(ctx context.Context, id string) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().UTC().Format(domain.DateLayout)
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if t.TaskType == domain.TaskTypeDaily {
			// The history is rebuilt rather than edited in place: earlier
			// reads may still hold the previous slice.
			if slices.Contains(t.CompletionHistory, today) {
				t.CompletionHistory = slices.DeleteFunc(slices.Clone(t.CompletionHistory), func(d string) bool {
					return d == today
				})
			} else {
				t.CompletionHistory = append(slices.Clone(t.CompletionHistory), today)
			}
		} else {
			t.Completed = !t.Completed
		}
		s.persistLocked(ctx)
		break
	}
	return analytics.SortTimeline(s.tasks)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
	if len(s.tasks) != before {
		s.persistLocked(ctx)
	}
}

func (s *TaskService) Stats(ctx context.Context) analytics.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.Summarize(s.tasks)
}

func (s *TaskService) ActivityMatrix(ctx context.Context) []analytics.ActivityDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.ActivityMatrix(s.tasks, s.now())
}

func (s *TaskService) ExportSnapshot(ctx context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Snapshot{
		Tasks:      domain.CloneTasks(s.tasks),
		ExportedAt: s.now().UTC().Format(time.RFC3339),
	}
}

func (s *TaskService) ImportSnapshot(ctx context.Context, raw []byte) (int, error) {
	var doc struct {
		Tasks json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, domain.ErrInvalidSnapshot
	}
	// The tasks field must be present and must be a JSON array; "null" or a
	// scalar is rejected without touching current state.
	field := bytes.TrimSpace(doc.Tasks)
	if len(field) == 0 || field[0] != '[' {
		return 0, domain.ErrInvalidSnapshot
	}
	var tasks []domain.Task
	if err := json.Unmarshal(field, &tasks); err != nil {
		return 0, domain.ErrInvalidSnapshot
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.persistLocked(ctx)
	return len(tasks), nil
}

// persistLocked writes the current envelope through the store. Callers hold
// the mutex. A write failure leaves the in-memory state as source of truth
// for the rest of the session.
func (s *TaskService) persistLocked(ctx context.Context) {
	data := domain.AppData{
		Tasks:    s.tasks,
		UserName: domain.DefaultUserName,
		Version:  domain.SchemaVersion,
	}
	if err := s.store.Save(ctx, data); err != nil {
		zap.L().Warn("failed to persist app state", zap.Error(err))
	}
}

var _ ports.TaskService = (*TaskService)(nil)
