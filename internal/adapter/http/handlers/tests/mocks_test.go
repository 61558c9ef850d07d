package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/analytics"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) []domain.Task {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, id string) []domain.Task {
	args := m.Called(ctx, id)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *taskServiceMock) Stats(ctx context.Context) analytics.Summary {
	args := m.Called(ctx)
	return args.Get(0).(analytics.Summary)
}

func (m *taskServiceMock) ActivityMatrix(ctx context.Context) []analytics.ActivityDay {
	args := m.Called(ctx)

	var days []analytics.ActivityDay
	if value := args.Get(0); value != nil {
		days = value.([]analytics.ActivityDay)
	}
	return days
}

func (m *taskServiceMock) ExportSnapshot(ctx context.Context) domain.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(domain.Snapshot)
}

func (m *taskServiceMock) ImportSnapshot(ctx context.Context, raw []byte) (int, error) {
	args := m.Called(ctx, raw)
	return args.Int(0), args.Error(1)
}

type advisorMock struct {
	mock.Mock
}

func (m *advisorMock) Advise(ctx context.Context, prompt string, tasks []domain.Task) (string, error) {
	args := m.Called(ctx, prompt, tasks)
	return args.String(0), args.Error(1)
}
