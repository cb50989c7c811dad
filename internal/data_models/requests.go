package dto

// Request payloads. Optional or validator-checked fields are pointers so that
// "absent" and "present but empty" produce distinct validation codes.

type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
}

type AssignTaskRequest struct {
	AssignedTo *string `json:"assigned_to"`
}

type CreateCommentRequest struct {
	Text *string `json:"text"`
}

type RegisterRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
