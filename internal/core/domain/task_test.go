package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
)

func TestTask_DoneEver_Normal(t *testing.T) {
	task := domain.Task{TaskType: domain.TaskTypeNormal, Completed: true}
	require.True(t, task.DoneEver())

	task.Completed = false
	require.False(t, task.DoneEver())
}

func TestTask_DoneEver_NormalIgnoresHistory(t *testing.T) {
	// completionHistory is not authoritative for a normal task even when set.
	task := domain.Task{
		TaskType:          domain.TaskTypeNormal,
		Completed:         false,
		CompletionHistory: []string{"2024-01-01"},
	}
	require.False(t, task.DoneEver())
}

func TestTask_DoneEver_Daily(t *testing.T) {
	task := domain.Task{TaskType: domain.TaskTypeDaily}
	require.False(t, task.DoneEver())

	task.CompletionHistory = []string{"2024-01-01"}
	require.True(t, task.DoneEver())
}

func TestTask_DoneEver_DailyIgnoresCompletedFlag(t *testing.T) {
	task := domain.Task{TaskType: domain.TaskTypeDaily, Completed: true}
	require.False(t, task.DoneEver())
}

func TestTask_CompletedOn(t *testing.T) {
	daily := domain.Task{
		TaskType:          domain.TaskTypeDaily,
		CompletionHistory: []string{"2024-01-01", "2024-01-03"},
	}
	require.True(t, daily.CompletedOn("2024-01-01"))
	require.False(t, daily.CompletedOn("2024-01-02"))

	normal := domain.Task{
		TaskType:      domain.TaskTypeNormal,
		ScheduledTime: "2024-01-02T09:30:00Z",
		Completed:     true,
	}
	require.True(t, normal.CompletedOn("2024-01-02"))
	require.False(t, normal.CompletedOn("2024-01-03"))

	normal.Completed = false
	require.False(t, normal.CompletedOn("2024-01-02"))
}

func TestTask_ScheduledAt(t *testing.T) {
	task := domain.Task{ScheduledTime: "2024-03-10T08:00:00Z"}
	require.Equal(t, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), task.ScheduledAt())

	task.ScheduledTime = "not-a-timestamp"
	require.True(t, task.ScheduledAt().IsZero())
}

func TestParseScheduledTime(t *testing.T) {
	ts, err := domain.ParseScheduledTime("2024-03-10T08:00:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), ts)

	// datetime-local shape from browser inputs
	ts, err = domain.ParseScheduledTime("2024-03-10T08:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), ts)

	_, err = domain.ParseScheduledTime("")
	require.Error(t, err)

	_, err = domain.ParseScheduledTime("tomorrow")
	require.Error(t, err)
}
