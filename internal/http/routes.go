package http

import (
	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

// Register wires every route. Task routes sit behind the auth middleware;
// identity and directory endpoints stay open.
func Register(e *echo.Echo, h *Handler, tokens *auth.TokenIssuer, limiter echo.MiddlewareFunc) {
	e.Use(limiter)

	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.GET("/users/list", h.ListUsers)

	task := e.Group("/task", middleware.Auth(tokens))
	task.POST("/create", h.CreateTask)
	task.GET("/list", h.ListTasks)
	task.GET("/view/:taskId", h.ViewTask)
	task.PUT("/update/:taskId", h.UpdateTask)
	task.PUT("/close/:taskId", h.CloseTask)
	task.POST("/assign/:taskId", h.AssignTask)
	task.DELETE("/unassign/:assignmentId", h.UnassignTask)
	task.POST("/comment/:taskId", h.CreateComment)
	task.DELETE("/comment/:commentId", h.DeleteComment)
}
