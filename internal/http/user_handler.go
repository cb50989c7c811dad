package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return fail(c, err)
	}

	user, err := h.userService.Register(c.Request().Context(), *req.Name, *req.Email, *req.Password)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.NewUserResponse(user))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.ErrInvalidJSON)
	}

	token, err := h.userService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   token,
	})
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.NewUserListResponse(users))
}
