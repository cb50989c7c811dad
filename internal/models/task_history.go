package model

import "time"

// TaskHistory is an append-only audit record of one field change or
// assignment event on a task. Rows are never updated or deleted; the
// auto-incremented ID doubles as the canonical insertion order.
type TaskHistory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID      string    `gorm:"size:36;not null;index" json:"-"`
	Field       string    `gorm:"not null" json:"field"`
	ChangedFrom string    `json:"changed_from"`
	ChangedTo   string    `json:"changed_to"`
	ChangedOn   time.Time `gorm:"not null" json:"changed_on"`
	ChangedBy   string    `gorm:"size:36;not null" json:"-"`

	Author *User `gorm:"foreignKey:ChangedBy" json:"changed_by,omitempty"`
}
