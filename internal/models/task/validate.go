package task

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	TitleMinLength       = 3
	DescriptionMaxLength = 200
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
)

// ValidationErrors - ошибки валидации по полям, ключ - имя поля
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func validateTitle(errs ValidationErrors, title string) {
	if title == "" {
		errs[FieldTitle] = "Title is required"
		return
	}
	if utf8.RuneCountInString(title) < TitleMinLength {
		errs[FieldTitle] = "Title must be at least 3 characters"
	}
}

func validateDescription(errs ValidationErrors, description *string) {
	if description != nil && utf8.RuneCountInString(*description) > DescriptionMaxLength {
		errs[FieldDescription] = "Description cannot exceed 200 characters"
	}
}

func validateStatus(errs ValidationErrors, status Status) {
	if !status.Valid() {
		errs[FieldStatus] = "Status must be one of: Todo, In Progress, Done"
	}
}

func validatePriority(errs ValidationErrors, priority Priority) {
	if !priority.Valid() {
		errs[FieldPriority] = "Priority must be one of: Low, Medium, High"
	}
}

// Validate проверяет данные для создания. Возвращает nil или ValidationErrors.
func (in Input) Validate() error {
	errs := ValidationErrors{}
	validateTitle(errs, in.Title)
	validateDescription(errs, in.Description)
	validateStatus(errs, in.Status)
	validatePriority(errs, in.Priority)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate проверяет только переданные поля
func (p Patch) Validate() error {
	errs := ValidationErrors{}
	if p.Title != nil {
		validateTitle(errs, *p.Title)
	}
	validateDescription(errs, p.Description)
	if p.Status != nil {
		validateStatus(errs, *p.Status)
	}
	if p.Priority != nil {
		validatePriority(errs, *p.Priority)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
