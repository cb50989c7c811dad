package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
)

func authTestServer(t *testing.T, tokens *auth.TokenIssuer) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, ActingUserID(c))
	}, Auth(tokens))
	return e
}

func doRequest(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeCodes(t *testing.T, rec *httptest.ResponseRecorder) []string {
	var body struct {
		Success bool     `json:"success"`
		Message []string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body.Message
}

func TestAuth_ResolvesActingUser(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Minute)
	e := authTestServer(t, tokens)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	rec := doRequest(e, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "user-42" {
		t.Errorf("acting user = %q, want user-42", rec.Body.String())
	}
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Minute)
	e := authTestServer(t, tokens)

	rec := doRequest(e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	codes := decodeCodes(t, rec)
	if len(codes) != 1 || codes[0] != "MISSING_TOKEN" {
		t.Errorf("expected [MISSING_TOKEN], got %v", codes)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Minute)
	e := authTestServer(t, tokens)

	rec := doRequest(e, "Bearer garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	codes := decodeCodes(t, rec)
	if len(codes) != 1 || codes[0] != "INVALID_TOKEN" {
		t.Errorf("expected [INVALID_TOKEN], got %v", codes)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Minute)
	e := authTestServer(t, tokens)

	other := auth.NewTokenIssuer("other-secret", time.Minute)
	token, _ := other.Issue("user-42")

	rec := doRequest(e, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
