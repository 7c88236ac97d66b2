package repository

import (
	"time"

	"tasktracker/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// TaskUpdate holds the replacement values for a full-field task update.
// Nil fields are written as NULL; presence is not validated here.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
	DueDate     *time.Time
}

// TaskRepository defines the interface for task data access. Every read
// and mutation beyond Create is scoped by owner: the task ID and the
// owner ID are matched in a single predicate, so a task owned by someone
// else behaves exactly like a task that does not exist.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByOwner retrieves all tasks owned by the given user
	ListByOwner(ownerID uint64) ([]models.Task, error)

	// UpdateOwned replaces the mutable fields of the task matched by
	// (taskID AND ownerID) and reports the number of rows affected.
	UpdateOwned(taskID, ownerID uint64, update TaskUpdate) (int64, error)

	// DeleteOwned removes the task matched by (taskID AND ownerID) and
	// reports the number of rows affected.
	DeleteOwned(taskID, ownerID uint64) (int64, error)
}
