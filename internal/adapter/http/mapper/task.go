package mapper

import (
	"slices"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/dto"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:                task.ID,
		Title:             task.Title,
		ScheduledTime:     task.ScheduledTime,
		Completed:         task.Completed,
		TaskType:          string(task.TaskType),
		Priority:          string(task.Priority),
		Category:          task.Category,
		CompletionHistory: slices.Clone(task.CompletionHistory),
	}
}

func ToSnapshot(snap domain.Snapshot) dto.Snapshot {
	return dto.Snapshot{
		Tasks:      ToTaskItems(snap.Tasks),
		ExportedAt: snap.ExportedAt,
	}
}
