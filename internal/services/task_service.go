package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tasktracker/internal/models"
	"tasktracker/internal/repository"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidDueDate = errors.New("due date must be formatted as YYYY-MM-DD")
)

// TaskService handles owner-scoped task operations. Every operation takes
// the authenticated username and resolves the numeric owner ID with a
// fresh lookup; nothing is cached between calls.
type TaskService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// List returns all tasks owned by the user. No tasks is a successful
// empty result, not an error.
func (s *TaskService) List(username string) ([]models.Task, error) {
	ownerID, err := s.resolveOwnerID(username)
	if err != nil {
		return nil, err
	}

	return s.taskRepo.ListByOwner(ownerID)
}

// CreateTaskInput represents a new task. Description is optional and
// stored as NULL when absent.
type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    models.TaskPriority
	Status      models.TaskStatus
	DueDate     string
}

// Create inserts a new task owned by the user and returns its ID.
// Title, priority, status and due date are all required.
func (s *TaskService) Create(username string, input CreateTaskInput) (uint64, error) {
	if input.Title == "" || input.Priority == 0 || input.Status == 0 || input.DueDate == "" {
		return 0, ErrMissingFields
	}

	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return 0, ErrInvalidDueDate
	}

	ownerID, err := s.resolveOwnerID(username)
	if err != nil {
		return 0, err
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     &dueDate,
		OwnerID:     ownerID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}

	return task.ID, nil
}

// UpdateTaskInput carries the replacement field values for a task update.
// Absent fields are written as NULL; no presence validation is applied.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
	DueDate     *string
}

// Update replaces all mutable fields of the task matched by the task ID
// and the user's owner ID. A missing task and a task owned by another
// user are both reported as ErrTaskNotFound.
func (s *TaskService) Update(username string, taskID uint64, input UpdateTaskInput) error {
	update := repository.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
	}

	if input.DueDate != nil {
		dueDate, err := parseDueDate(*input.DueDate)
		if err != nil {
			return ErrInvalidDueDate
		}
		update.DueDate = &dueDate
	}

	ownerID, err := s.resolveOwnerID(username)
	if err != nil {
		return err
	}

	affected, err := s.taskRepo.UpdateOwned(taskID, ownerID, update)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete removes the task matched by the task ID and the user's owner ID,
// with the same not-found semantics as Update.
func (s *TaskService) Delete(username string, taskID uint64) error {
	ownerID, err := s.resolveOwnerID(username)
	if err != nil {
		return err
	}

	affected, err := s.taskRepo.DeleteOwned(taskID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (s *TaskService) resolveOwnerID(username string) (uint64, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to resolve task owner: %w", err)
	}
	return user.ID, nil
}

func parseDueDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
