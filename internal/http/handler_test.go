package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/auth"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message []string        `json:"message"`
}

func newTestServer(t *testing.T) (*echo.Echo, *auth.TokenIssuer, *repository.UserRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.TaskHistory{},
		&model.TaskAssignee{},
		&model.TaskComment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokens := auth.NewTokenIssuer("test-secret", 10*time.Minute)

	taskService := services.NewTaskService(taskRepo, userRepo)
	userService := services.NewUserService(userRepo, tokens, bcrypt.MinCost)

	e := echo.New()
	handler := NewHandler(taskService, userService)

	// No rate limiting in these tests.
	noop := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	Register(e, handler, tokens, noop)

	return e, tokens, userRepo
}

func request(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}

func TestRegisterLoginAndCreateTask(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := request(e, http.MethodPost, "/register", "",
		`{"name":"Alice","email":"alice@example.com","password":"123456"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = request(e, http.MethodPost, "/login", "",
		`{"username":"alice@example.com","password":"123456"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
	var loginBody struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginBody); err != nil || loginBody.Token == "" {
		t.Fatalf("login response missing token: %s", rec.Body.String())
	}

	rec = request(e, http.MethodPost, "/task/create", loginBody.Token,
		`{"title":"T","description":"D","type":"feature"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create task: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("create task: success=false, message=%v", env.Message)
	}

	var task struct {
		ID       string `json:"id"`
		Status   string `json:"status"`
		ClosedOn any    `json:"closed_on"`
	}
	if err := json.Unmarshal(env.Data, &task); err != nil {
		t.Fatalf("failed to decode task data: %v", err)
	}
	if task.Status != "open" || task.ClosedOn != nil {
		t.Errorf("fresh task: status=%s closed_on=%v", task.Status, task.ClosedOn)
	}
}

func TestDuplicateAssignmentReturns202(t *testing.T) {
	e, tokens, users := newTestServer(t)
	ctx := context.Background()

	alice, err := users.Create(ctx, "Alice", "alice@example.com", "hashed")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	bob, _ := users.Create(ctx, "Bob", "bob@example.com", "hashed")
	token, _ := tokens.Issue(bob.ID)

	rec := request(e, http.MethodPost, "/task/create", token,
		`{"title":"T","description":"D","type":"feature"}`)
	env := decodeEnvelope(t, rec)
	var task struct {
		ID string `json:"id"`
	}
	json.Unmarshal(env.Data, &task)

	body := `{"assigned_to":"` + alice.ID + `"}`
	rec = request(e, http.MethodPost, "/task/assign/"+task.ID, token, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("first assign: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = request(e, http.MethodPost, "/task/assign/"+task.ID, token, body)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("duplicate assign: expected 202, got %d", rec.Code)
	}
	env = decodeEnvelope(t, rec)
	if env.Success {
		t.Error("duplicate assign: expected success=false")
	}
	if len(env.Message) != 1 || env.Message[0] != "USER_ALREADY_ASSIGNED" {
		t.Errorf("expected [USER_ALREADY_ASSIGNED], got %v", env.Message)
	}
}

func TestViewTask_NotFoundEnvelope(t *testing.T) {
	e, tokens, users := newTestServer(t)
	ctx := context.Background()

	alice, _ := users.Create(ctx, "Alice", "alice@example.com", "hashed")
	token, _ := tokens.Issue(alice.ID)

	rec := request(e, http.MethodGet, "/task/view/missing", token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Error("expected success=false")
	}
	if len(env.Message) != 1 || env.Message[0] != "TASK_NOT_FOUND" {
		t.Errorf("expected [TASK_NOT_FOUND], got %v", env.Message)
	}
}

func TestTaskRoutesRequireAuth(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := request(e, http.MethodGet, "/task/list", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if len(env.Message) != 1 || env.Message[0] != "MISSING_TOKEN" {
		t.Errorf("expected [MISSING_TOKEN], got %v", env.Message)
	}
}

func TestCreateTask_ValidationCodes(t *testing.T) {
	e, tokens, users := newTestServer(t)
	ctx := context.Background()

	alice, _ := users.Create(ctx, "Alice", "alice@example.com", "hashed")
	token, _ := tokens.Issue(alice.ID)

	rec := request(e, http.MethodPost, "/task/create", token, `{"title":"","type":"epic"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	want := []string{"EMPTY_TITLE", "MISSING_DESCRIPTION", "INVALID_TYPE"}
	if len(env.Message) != len(want) {
		t.Fatalf("expected codes %v, got %v", want, env.Message)
	}
	for i := range want {
		if env.Message[i] != want[i] {
			t.Errorf("message[%d] = %s, want %s", i, env.Message[i], want[i])
		}
	}
}
