package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/dto"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/middleware"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/pkg/apierrors"
)

type AdviceHandler struct {
	taskService ports.TaskService
	advisor     ports.Advisor
}

func NewAdviceHandler(taskService ports.TaskService, advisor ports.Advisor) *AdviceHandler {
	return &AdviceHandler{taskService: taskService, advisor: advisor}
}

func (h *AdviceHandler) Advise(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAdvicePrompt, lang),
		)
		return
	}

	tasks := h.taskService.ListTasks(c.Request.Context())
	advice, err := h.advisor.Advise(c.Request.Context(), req.Prompt, tasks)
	if err != nil {
		zap.L().Error("failed to fetch advice", zap.Error(err))
		c.JSON(
			http.StatusBadGateway,
			apierrors.CreateError(http.StatusBadGateway, apierrors.MsgFailAdvice, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}
