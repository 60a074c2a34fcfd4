package service

import (
	"fmt"
	"taskManager/internal/models/task"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}

	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}

	return busErr
}

func NewNotFound(id string, err error) *BusinessError {
	busErr := NewBusinessError(CodeNotFound, fmt.Sprintf("task %s not found", id),
		ToDetail("resource", "task"),
		ToDetail("id", id),
	)
	busErr.Err = err
	return busErr
}

// NewValidationError - ошибки по полям попадают в details как есть
func NewValidationError(errs task.ValidationErrors) *BusinessError {
	details := make([]Detail, 0, len(errs))
	for field, reason := range errs {
		details = append(details, ToDetail(field, reason))
	}
	busErr := NewBusinessError(CodeValidation, "validation failed", details...)
	busErr.Err = errs
	return busErr
}

func NewInternal(message string, err error) *BusinessError {
	busErr := NewBusinessError(CodeInternal, message)
	busErr.Err = err
	return busErr
}
