package validators

import (
	"testing"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func codesOf(t *testing.T, err error) []string {
	if err == nil {
		t.Fatal("expected a validation error")
	}
	return apperrors.Codes(err)
}

func strPtr(s string) *string {
	return &s
}

func TestValidateCreateTaskRequest(t *testing.T) {
	err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:       strPtr("T"),
		Description: strPtr("D"),
		Type:        strPtr("feature"),
	})
	if err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	codes := codesOf(t, ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title: strPtr(""),
		Type:  strPtr("epic"),
	}))
	want := []string{"EMPTY_TITLE", "MISSING_DESCRIPTION", "INVALID_TYPE"}
	if len(codes) != len(want) {
		t.Fatalf("expected codes %v, got %v", want, codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %s, want %s", i, codes[i], want[i])
		}
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}); err != nil {
		t.Errorf("empty patch rejected: %v", err)
	}

	codes := codesOf(t, ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{
		Title:  strPtr(""),
		Status: strPtr("done"),
	}))
	want := []string{"EMPTY_TITLE", "INVALID_STATUS"}
	if len(codes) != len(want) {
		t.Fatalf("expected codes %v, got %v", want, codes)
	}
}

func TestValidateAssignTaskRequest(t *testing.T) {
	if err := ValidateAssignTaskRequest(&dto.AssignTaskRequest{AssignedTo: strPtr("user-1")}); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	codes := codesOf(t, ValidateAssignTaskRequest(&dto.AssignTaskRequest{}))
	if len(codes) != 1 || codes[0] != "MISSING_ASSIGNED_TO" {
		t.Errorf("expected [MISSING_ASSIGNED_TO], got %v", codes)
	}
}

func TestValidateCreateCommentRequest(t *testing.T) {
	codes := codesOf(t, ValidateCreateCommentRequest(&dto.CreateCommentRequest{}))
	if len(codes) != 1 || codes[0] != "MISSING_TEXT" {
		t.Errorf("expected [MISSING_TEXT], got %v", codes)
	}

	codes = codesOf(t, ValidateCreateCommentRequest(&dto.CreateCommentRequest{Text: strPtr("")}))
	if len(codes) != 1 || codes[0] != "EMPTY_TEXT" {
		t.Errorf("expected [EMPTY_TEXT], got %v", codes)
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	codes := codesOf(t, ValidateRegisterRequest(&dto.RegisterRequest{Name: strPtr("Alice")}))
	want := []string{"MISSING_EMAIL", "MISSING_PASSWORD"}
	if len(codes) != len(want) {
		t.Fatalf("expected codes %v, got %v", want, codes)
	}
}
