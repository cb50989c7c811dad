package model

// TaskAssignee links a task to a responsible user. The (TaskID, AssignedTo)
// pair is unique: the same user cannot be assigned to the same task twice
// concurrently. The constraint is enforced by the store, not by a pre-check.
type TaskAssignee struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID     string `gorm:"size:36;not null;uniqueIndex:idx_task_assignee_pair" json:"-"`
	AssignedTo string `gorm:"size:36;not null;uniqueIndex:idx_task_assignee_pair" json:"-"`
	AssignedBy string `gorm:"size:36;not null" json:"-"`

	Assignee *User `gorm:"foreignKey:AssignedTo" json:"assigned_to,omitempty"`
	Assigner *User `gorm:"foreignKey:AssignedBy" json:"assigned_by,omitempty"`
}
