package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description string               `gorm:"not null" json:"description"`
	Type        constants.TaskType   `gorm:"type:varchar(20);not null" json:"type"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedOn   time.Time            `gorm:"not null" json:"created_on"`
	CreatedBy   string               `gorm:"size:36;not null" json:"-"`
	ClosedOn    *time.Time           `json:"closed_on"`
	ClosedBy    *string              `gorm:"size:36" json:"-"`

	Creator   *User          `gorm:"foreignKey:CreatedBy" json:"created_by,omitempty"`
	Closer    *User          `gorm:"foreignKey:ClosedBy" json:"closed_by,omitempty"`
	History   []TaskHistory  `gorm:"foreignKey:TaskID" json:"history,omitempty"`
	Assignees []TaskAssignee `gorm:"foreignKey:TaskID" json:"assignees,omitempty"`
	Comments  []TaskComment  `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}

// Closed reports whether the task has reached its terminal state.
func (t *Task) Closed() bool {
	return t.Status == constants.StatusClosed
}
