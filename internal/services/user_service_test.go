package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"task-tracker.com/task-tracker/internal/auth"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func newTestUserService(t *testing.T) *UserService {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	tokens := auth.NewTokenIssuer("test-secret", 10*time.Minute)
	return NewUserService(userRepo, tokens, bcrypt.MinCost)
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, "Alice", "alice@example.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected user ID to be set")
	}
	if user.Password == "123456" {
		t.Error("password stored in plaintext")
	}

	token, err := service.Login(ctx, "alice@example.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	issuer := auth.NewTokenIssuer("test-secret", 10*time.Minute)
	subject, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != user.ID {
		t.Errorf("token subject = %s, want %s", subject, user.ID)
	}
}

func TestRegister_EmailAlreadyTaken(t *testing.T) {
	service := newTestUserService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "Alice", "alice@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := service.Register(ctx, "Other", "alice@example.com", "123456")
	if !errors.Is(err, apperrors.ErrEmailAlreadyTaken) {
		t.Errorf("expected EMAIL_ALREADY_TAKEN, got %v", err)
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	service := newTestUserService(t)

	_, err := service.Register(context.Background(), "Alice", "not-an-email", "123456")
	if !errors.Is(err, apperrors.ErrInvalidEmail) {
		t.Errorf("expected INVALID_EMAIL, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	service := newTestUserService(t)

	_, err := service.Login(context.Background(), "ghost@example.com", "123456")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected USER_NOT_FOUND, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newTestUserService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "Alice", "alice@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := service.Login(ctx, "alice@example.com", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected INVALID_CREDENTIALS, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	service := newTestUserService(t)
	ctx := context.Background()

	service.Register(ctx, "Bob", "bob@example.com", "123456")
	service.Register(ctx, "Alice", "alice@example.com", "123456")

	users, err := service.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Name != "Alice" || users[1].Name != "Bob" {
		t.Error("users not ordered by name")
	}
}
