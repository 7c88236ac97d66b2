package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/dto"
	apierrors "tasktracker/internal/errors"
	"tasktracker/internal/middleware"
	"tasktracker/internal/models"
	"tasktracker/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers. All routes are
// mounted behind RequireAuth, so the identity is always present.
type TaskHandler struct {
	taskService *services.TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks returns all tasks owned by the current user.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "Not authenticated")
		return
	}

	tasks, err := h.taskService.List(username)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string              `json:"title"`
		Description *string             `json:"description"`
		Priority    models.TaskPriority `json:"priority"`
		Status      models.TaskStatus   `json:"status"`
		DueDate     string              `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingData, "Title, priority, status and due date are required")
		return
	}

	taskID, err := h.taskService.Create(username, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "TASK_CREATED",
		"task_id": taskID,
	})
}

// UpdateTask replaces all mutable fields of a task owned by the current user.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "Not authenticated")
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		Priority    *models.TaskPriority `json:"priority"`
		Status      *models.TaskStatus   `json:"status"`
		DueDate     *string              `json:"due_date"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingData, "Invalid request body")
		return
	}

	err := h.taskService.Update(username, taskID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "TASK_UPDATED"})
}

// DeleteTask removes a task owned by the current user.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "Not authenticated")
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(username, taskID); err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "TASK_DELETED"})
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric ID can never match a task, for any owner.
		apierrors.NotFound(c, apierrors.ErrCodeTaskNotFound, "Task not found")
		return 0, false
	}
	return taskID, true
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		apierrors.BadRequest(c, apierrors.ErrCodeMissingData, "Title, priority, status and due date are required")
	case errors.Is(err, services.ErrInvalidDueDate):
		apierrors.BadRequest(c, apierrors.ErrCodeMissingData, "Due date must be formatted as YYYY-MM-DD")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, apierrors.ErrCodeTaskNotFound, "Task not found")
	default:
		h.logger.Error("task operation failed", zap.Error(err))
		apierrors.InternalError(c)
	}
}
