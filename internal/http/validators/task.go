package validators

import (
	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// Field-shape validation. Every failed rule contributes one code; the codes
// are aggregated into a single 400 response.

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	var codes []string

	switch {
	case r.Title == nil:
		codes = append(codes, "MISSING_TITLE")
	case *r.Title == "":
		codes = append(codes, "EMPTY_TITLE")
	}

	switch {
	case r.Description == nil:
		codes = append(codes, "MISSING_DESCRIPTION")
	case *r.Description == "":
		codes = append(codes, "EMPTY_DESCRIPTION")
	}

	switch {
	case r.Type == nil:
		codes = append(codes, "MISSING_TYPE")
	case !constants.ValidType(*r.Type):
		codes = append(codes, "INVALID_TYPE")
	}

	if len(codes) > 0 {
		return apperrors.Validation(codes...)
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	var codes []string

	if r.Title != nil && *r.Title == "" {
		codes = append(codes, "EMPTY_TITLE")
	}
	if r.Description != nil && *r.Description == "" {
		codes = append(codes, "EMPTY_DESCRIPTION")
	}
	if r.Type != nil && !constants.ValidType(*r.Type) {
		codes = append(codes, "INVALID_TYPE")
	}
	if r.Status != nil && !constants.ValidStatus(*r.Status) {
		codes = append(codes, "INVALID_STATUS")
	}

	if len(codes) > 0 {
		return apperrors.Validation(codes...)
	}
	return nil
}

func ValidateAssignTaskRequest(r *dto.AssignTaskRequest) error {
	if r.AssignedTo == nil || *r.AssignedTo == "" {
		return apperrors.Validation("MISSING_ASSIGNED_TO")
	}
	return nil
}

func ValidateCreateCommentRequest(r *dto.CreateCommentRequest) error {
	switch {
	case r.Text == nil:
		return apperrors.Validation("MISSING_TEXT")
	case *r.Text == "":
		return apperrors.Validation("EMPTY_TEXT")
	}
	return nil
}
