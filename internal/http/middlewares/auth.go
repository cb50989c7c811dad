package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const actingUserKey = "actingUserID"

// Auth resolves the bearer token into the acting user id and stores it in the
// request context. Handlers behind it can rely on ActingUserID being set.
func Auth(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return reject(c, apperrors.ErrMissingToken)
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return reject(c, apperrors.ErrMissingToken)
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return reject(c, apperrors.ErrInvalidToken)
			}

			c.Set(actingUserKey, userID)
			return next(c)
		}
	}
}

// ActingUserID returns the identity resolved by Auth for this request.
func ActingUserID(c echo.Context) string {
	id, _ := c.Get(actingUserKey).(string)
	return id
}

func reject(c echo.Context, err *apperrors.Exception) error {
	return c.JSON(err.StatusCode, dto.Response{
		Success: false,
		Message: err.Codes,
	})
}
