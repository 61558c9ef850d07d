package http

import (
	"github.com/gin-gonic/gin"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/handlers"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	statsHandler *handlers.StatsHandler,
	snapshotHandler *handlers.SnapshotHandler,
	adviceHandler *handlers.AdviceHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.POST("/tasks/:id/toggle", taskHandler.ToggleTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/stats", statsHandler.Summary)
		api.GET("/stats/activity", statsHandler.Activity)

		api.GET("/export", snapshotHandler.Export)
		api.POST("/import", snapshotHandler.Import)

		api.POST("/advice", adviceHandler.Advise)
	}
}
