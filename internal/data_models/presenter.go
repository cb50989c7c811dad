package dto

import (
	model "task-tracker.com/task-tracker/internal/models"
)

// Presenters map storage models onto the wire shapes. Storage names
// (CreatedOn, ChangedFrom, ...) are renamed here and only here.

func NewUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func NewHistoryResponse(h *model.TaskHistory) HistoryResponse {
	return HistoryResponse{
		ID:          h.ID,
		Field:       h.Field,
		ChangedFrom: h.ChangedFrom,
		ChangedTo:   h.ChangedTo,
		ChangedOn:   h.ChangedOn,
		ChangedBy:   NewUserResponse(h.Author),
	}
}

func NewAssignmentResponse(a *model.TaskAssignee) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID,
		AssignedTo: NewUserResponse(a.Assignee),
		AssignedBy: NewUserResponse(a.Assigner),
	}
}

func NewCommentResponse(c *model.TaskComment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		CreatedOn: c.CreatedOn,
		CreatedBy: NewUserResponse(c.Author),
	}
}

func NewTaskResponse(t *model.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Type:        string(t.Type),
		CreatedOn:   t.CreatedOn,
		ClosedOn:    t.ClosedOn,
		CreatedBy:   NewUserResponse(t.Creator),
		ClosedBy:    NewUserResponse(t.Closer),
		History:     make([]HistoryResponse, 0, len(t.History)),
		Assignees:   make([]AssignmentResponse, 0, len(t.Assignees)),
		Comments:    make([]CommentResponse, 0, len(t.Comments)),
	}

	for i := range t.History {
		resp.History = append(resp.History, NewHistoryResponse(&t.History[i]))
	}
	for i := range t.Assignees {
		resp.Assignees = append(resp.Assignees, NewAssignmentResponse(&t.Assignees[i]))
	}
	for i := range t.Comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(&t.Comments[i]))
	}

	return resp
}

func NewTaskSummary(t *model.Task) TaskSummary {
	summary := TaskSummary{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Type:        string(t.Type),
		CreatedOn:   t.CreatedOn,
		ClosedOn:    t.ClosedOn,
		CreatedBy:   NewUserResponse(t.Creator),
		ClosedBy:    NewUserResponse(t.Closer),
		Assignees:   make([]AssignmentResponse, 0, len(t.Assignees)),
	}

	for i := range t.Assignees {
		summary.Assignees = append(summary.Assignees, NewAssignmentResponse(&t.Assignees[i]))
	}

	return summary
}

func NewTaskListResponse(tasks []model.Task) TaskListResponse {
	resp := TaskListResponse{
		Total: len(tasks),
		Tasks: make([]TaskSummary, 0, len(tasks)),
	}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, NewTaskSummary(&tasks[i]))
	}
	return resp
}

func NewUserListResponse(users []model.User) UserListResponse {
	resp := UserListResponse{
		Total: len(users),
		Users: make([]UserResponse, 0, len(users)),
	}
	for i := range users {
		resp.Users = append(resp.Users, *NewUserResponse(&users[i]))
	}
	return resp
}
