package model

import "time"

type TaskComment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID    string    `gorm:"size:36;not null;index" json:"-"`
	Text      string    `gorm:"not null" json:"comment_text"`
	CreatedOn time.Time `gorm:"not null" json:"created_on"`
	CreatedBy string    `gorm:"size:36;not null" json:"-"`

	Author *User `gorm:"foreignKey:CreatedBy" json:"created_by,omitempty"`
}
