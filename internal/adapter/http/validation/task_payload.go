package validation

import (
	"errors"
	"strings"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/dto"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput turns a bound create request into a domain input.
// Title must be non-blank and the scheduled time parseable; everything else
// defaults in the service.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if _, err := domain.ParseScheduledTime(req.ScheduledTime); err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:         title,
		ScheduledTime: req.ScheduledTime,
	}
	if req.TaskType != nil {
		input.TaskType = domain.TaskType(*req.TaskType)
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Category != nil {
		input.Category = *req.Category
	}
	return input, nil
}
