package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/dto"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/mapper"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/middleware"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/pkg/apierrors"
)

type SnapshotHandler struct {
	taskService ports.TaskService
}

func NewSnapshotHandler(taskService ports.TaskService) *SnapshotHandler {
	return &SnapshotHandler{taskService: taskService}
}

func (h *SnapshotHandler) Export(c *gin.Context) {
	snap := h.taskService.ExportSnapshot(c.Request.Context())

	// Filename embeds the export calendar date, e.g.
	// chronos_precision_backup_2026-08-29.json.
	date, _, _ := strings.Cut(snap.ExportedAt, "T")
	filename := fmt.Sprintf("chronos_precision_backup_%s.json", date)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	c.IndentedJSON(http.StatusOK, mapper.ToSnapshot(snap))
}

func (h *SnapshotHandler) Import(c *gin.Context) {
	lang := middleware.GetLang(c)

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSnapshot, lang),
		)
		return
	}

	count, err := h.taskService.ImportSnapshot(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSnapshot) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSnapshot, lang),
			)
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailImport, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResult{Imported: count})
}
