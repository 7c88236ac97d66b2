package repository

import (
	"gorm.io/gorm"

	"tasktracker/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByOwner retrieves all tasks owned by the given user
func (r *GormTaskRepository) ListByOwner(ownerID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.Where("owner_id = ?", ownerID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateOwned replaces the mutable fields of the task matched by
// (taskID AND ownerID). A map update keeps nil fields as SQL NULL
// instead of skipping them.
func (r *GormTaskRepository) UpdateOwned(taskID, ownerID uint64, update TaskUpdate) (int64, error) {
	values := map[string]interface{}{
		"title":       update.Title,
		"description": update.Description,
		"priority":    update.Priority,
		"status":      update.Status,
		"due_date":    update.DueDate,
	}

	result := r.db.Model(&models.Task{}).
		Where("id = ? AND owner_id = ?", taskID, ownerID).
		Updates(values)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteOwned removes the task matched by (taskID AND ownerID)
func (r *GormTaskRepository) DeleteOwned(taskID, ownerID uint64) (int64, error) {
	result := r.db.Where("id = ? AND owner_id = ?", taskID, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
