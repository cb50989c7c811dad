package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	userService *services.UserService
}

func NewHandler(taskService *services.TaskService, userService *services.UserService) *Handler {
	return &Handler{
		taskService: taskService,
		userService: userService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return fail(c, err)
	}

	task, err := h.taskService.CreateTask(
		c.Request().Context(),
		middleware.ActingUserID(c),
		*req.Title,
		*req.Description,
		*req.Type,
	)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.NewTaskResponse(task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter := repository.TaskFilter{
		Type:      c.QueryParam("type"),
		Status:    c.QueryParam("status"),
		CreatedBy: c.QueryParam("created_by"),
	}
	if assigned := c.QueryParam("assigned"); assigned != "" {
		wantAssigned := assigned == "true"
		filter.Assigned = &wantAssigned
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.NewTaskListResponse(tasks))
}

func (h *Handler) ViewTask(c echo.Context) error {
	task, err := h.taskService.ViewTask(c.Request().Context(), c.Param("taskId"))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return fail(c, err)
	}

	task, err := h.taskService.UpdateTask(
		c.Request().Context(),
		middleware.ActingUserID(c),
		c.Param("taskId"),
		services.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
			Type:        req.Type,
			Status:      req.Status,
		},
	)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.NewTaskResponse(task))
}

func (h *Handler) CloseTask(c echo.Context) error {
	task, err := h.taskService.CloseTask(
		c.Request().Context(),
		middleware.ActingUserID(c),
		c.Param("taskId"),
	)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.NewTaskResponse(task))
}

func (h *Handler) AssignTask(c echo.Context) error {
	var req dto.AssignTaskRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateAssignTaskRequest(&req); err != nil {
		return fail(c, err)
	}

	assignment, err := h.taskService.AssignTask(
		c.Request().Context(),
		middleware.ActingUserID(c),
		c.Param("taskId"),
		*req.AssignedTo,
	)
	if err != nil {
		return fail(c, err)
	}

	resp := dto.NewAssignmentResponse(assignment)
	return ok(c, &resp)
}

func (h *Handler) UnassignTask(c echo.Context) error {
	assignmentID, err := parseID(c.Param("assignmentId"))
	if err != nil {
		return fail(c, apperrors.ErrAssignmentNotFound)
	}

	err = h.taskService.UnassignTask(
		c.Request().Context(),
		middleware.ActingUserID(c),
		assignmentID,
	)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, nil)
}

func (h *Handler) CreateComment(c echo.Context) error {
	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateCommentRequest(&req); err != nil {
		return fail(c, err)
	}

	comment, err := h.taskService.CreateComment(
		c.Request().Context(),
		middleware.ActingUserID(c),
		c.Param("taskId"),
		*req.Text,
	)
	if err != nil {
		return fail(c, err)
	}

	resp := dto.NewCommentResponse(comment)
	return ok(c, &resp)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	commentID, err := parseID(c.Param("commentId"))
	if err != nil {
		return fail(c, apperrors.ErrCommentNotFound)
	}

	if err := h.taskService.DeleteComment(c.Request().Context(), commentID); err != nil {
		return fail(c, err)
	}

	return ok(c, nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    data,
	})
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperrors.StatusCode(err), dto.Response{
		Success: false,
		Message: apperrors.Codes(err),
	})
}
