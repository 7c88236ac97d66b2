package models

import "time"

type TaskPriority int

const (
	PriorityLow    TaskPriority = 1
	PriorityMedium TaskPriority = 2
	PriorityHigh   TaskPriority = 3
)

type TaskStatus int

const (
	StatusPending    TaskStatus = 1
	StatusInProgress TaskStatus = 2
	StatusCompleted  TaskStatus = 3
)

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	Priority    TaskPriority `gorm:"not null" json:"priority"`
	Status      TaskStatus   `gorm:"not null" json:"status"`
	DueDate     *time.Time   `gorm:"type:date" json:"due_date"`
	OwnerID     uint64       `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
