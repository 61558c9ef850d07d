package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/mapper"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
)

type StatsHandler struct {
	taskService ports.TaskService
}

func NewStatsHandler(taskService ports.TaskService) *StatsHandler {
	return &StatsHandler{taskService: taskService}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	summary := h.taskService.Stats(c.Request.Context())
	c.JSON(http.StatusOK, mapper.ToStatsSummary(summary))
}

func (h *StatsHandler) Activity(c *gin.Context) {
	days := h.taskService.ActivityMatrix(c.Request.Context())
	c.JSON(http.StatusOK, mapper.ToActivityDays(days))
}
