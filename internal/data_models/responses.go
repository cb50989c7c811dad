package dto

import "time"

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data"`
	Message []string `json:"message,omitempty"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type HistoryResponse struct {
	ID          uint          `json:"id"`
	Field       string        `json:"field"`
	ChangedFrom string        `json:"changed_from"`
	ChangedTo   string        `json:"changed_to"`
	ChangedOn   time.Time     `json:"changed_on"`
	ChangedBy   *UserResponse `json:"changed_by"`
}

type AssignmentResponse struct {
	ID         uint          `json:"id"`
	AssignedTo *UserResponse `json:"assigned_to"`
	AssignedBy *UserResponse `json:"assigned_by"`
}

type CommentResponse struct {
	ID        uint          `json:"id"`
	Text      string        `json:"comment_text"`
	CreatedOn time.Time     `json:"created_on"`
	CreatedBy *UserResponse `json:"created_by"`
}

// TaskResponse is the full projection returned by view and by mutating
// operations that hand back the refreshed task.
type TaskResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Type        string               `json:"type"`
	CreatedOn   time.Time            `json:"created_on"`
	ClosedOn    *time.Time           `json:"closed_on"`
	CreatedBy   *UserResponse        `json:"created_by"`
	ClosedBy    *UserResponse        `json:"closed_by"`
	History     []HistoryResponse    `json:"history"`
	Assignees   []AssignmentResponse `json:"assignees"`
	Comments    []CommentResponse    `json:"comments"`
}

// TaskSummary is the list-view projection: no history or comments, but
// assignees stay in so the assigned filter result is self-describing.
type TaskSummary struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Type        string               `json:"type"`
	CreatedOn   time.Time            `json:"created_on"`
	ClosedOn    *time.Time           `json:"closed_on"`
	CreatedBy   *UserResponse        `json:"created_by"`
	ClosedBy    *UserResponse        `json:"closed_by"`
	Assignees   []AssignmentResponse `json:"assignees"`
}

type TaskListResponse struct {
	Total int           `json:"total"`
	Tasks []TaskSummary `json:"tasks"`
}

type UserListResponse struct {
	Total int            `json:"total"`
	Users []UserResponse `json:"users"`
}
