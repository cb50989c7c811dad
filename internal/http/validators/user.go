package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	var codes []string

	if r.Name == nil || *r.Name == "" {
		codes = append(codes, "MISSING_NAME")
	}
	if r.Email == nil || *r.Email == "" {
		codes = append(codes, "MISSING_EMAIL")
	}
	if r.Password == nil || *r.Password == "" {
		codes = append(codes, "MISSING_PASSWORD")
	}

	if len(codes) > 0 {
		return apperrors.Validation(codes...)
	}
	return nil
}
