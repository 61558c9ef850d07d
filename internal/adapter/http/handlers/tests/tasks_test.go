package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/dto"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/handlers"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/middleware"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/pkg/apierrors"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/pkg/translator"
)

func taskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.GET("/tasks", handler.ListTasks)
	group.POST("/tasks", handler.CreateTask)
	group.POST("/tasks/:id/toggle", handler.ToggleTask)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything).Return(
		[]domain.Task{
			{
				ID:                "d1",
				Title:             "Morning run",
				ScheduledTime:     "2024-01-01T06:00:00Z",
				TaskType:          domain.TaskTypeDaily,
				Priority:          domain.TaskPriorityMedium,
				Category:          "Workout",
				CompletionHistory: []string{"2024-01-01"},
			},
			{
				ID:            "n1",
				Title:         "File taxes",
				ScheduledTime: "2024-04-10T12:00:00Z",
				Completed:     true,
				TaskType:      domain.TaskTypeNormal,
				Priority:      domain.TaskPriorityHigh,
				Category:      "Work",
			},
		},
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)

	require.Equal(t, "d1", got[0].ID)
	require.Equal(t, "Morning run", got[0].Title)
	require.Equal(t, "daily", got[0].TaskType)
	require.Equal(t, []string{"2024-01-01"}, got[0].CompletionHistory)
	require.Equal(t, "n1", got[1].ID)
	require.True(t, got[1].Completed)
	require.Empty(t, got[1].CompletionHistory)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, domain.CreateTaskInput{
		Title:         "Deep Work Session",
		ScheduledTime: "2024-06-02T09:00:00Z",
		TaskType:      domain.TaskTypeDaily,
		Priority:      domain.TaskPriorityHigh,
		Category:      "Study",
	}).Return(
		domain.Task{
			ID:                "new-id",
			Title:             "Deep Work Session",
			ScheduledTime:     "2024-06-02T09:00:00Z",
			TaskType:          domain.TaskTypeDaily,
			Priority:          domain.TaskPriorityHigh,
			Category:          "Study",
			CompletionHistory: []string{},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	body := `{"title":"Deep Work Session","scheduledTime":"2024-06-02T09:00:00Z","taskType":"daily","priority":"high","category":"Study"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "new-id", got.ID)
	require.Equal(t, "daily", got.TaskType)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_BlankTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	body := `{"title":"   ","scheduledTime":"2024-06-02T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateTask_UnparsableTime(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	body := `{"title":"Standup","scheduledTime":"next tuesday"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageFr)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Contenu de tâche invalide", got.ErrDetails.Message)
}

func TestTaskHandler_CreateTask_BadEnum(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	body := `{"title":"Standup","scheduledTime":"2024-06-02T09:00:00Z","priority":"urgent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_ToggleTask_ReturnsTimeline(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleTask", mock.Anything, "t1").Return(
		[]domain.Task{
			{ID: "t1", Title: "Ship release", TaskType: domain.TaskTypeNormal, Completed: true},
		},
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/t1/toggle", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.True(t, got[0].Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_UnknownIDStillOk(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleTask", mock.Anything, "missing").Return([]domain.Task{}).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/missing/toggle", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, "t1").Once()
	handler := handlers.NewTaskHandler(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	taskRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
