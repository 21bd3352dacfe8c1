package domain

import (
	"errors"
	"fmt"
)

// Lookup errors surfaced when selecting the subject row out of a survey
// export.
var (
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrAmbiguousSubject = errors.New("multiple subjects found")
)

// InvalidCodeError reports a raw survey code outside the declared set for a
// descriptor category. It is raised at parse time, never deferred to render
// time.
type InvalidCodeError struct {
	Category string `json:"category"`
	Code     int    `json:"code"`
}

// Error implements the error interface.
func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid code %d for descriptor category %q", e.Code, e.Category)
}

// NewInvalidCodeError creates a new InvalidCodeError.
func NewInvalidCodeError(category string, code int) *InvalidCodeError {
	return &InvalidCodeError{Category: category, Code: code}
}

// MissingFieldError reports a required survey field absent from the record.
type MissingFieldError struct {
	Field string `json:"field"`
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing from the record", e.Field)
}

// NewMissingFieldError creates a new MissingFieldError.
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// ValidationError reports a field whose value violates an input contract,
// such as a mutually-exclusive combination of coded values.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %q: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// TemplateStructureError reports a template document missing an anchor or
// section the writer requires. It indicates a deployment asset defect and is
// fatal to the conversion.
type TemplateStructureError struct {
	Anchor string `json:"anchor"`
}

// Error implements the error interface.
func (e *TemplateStructureError) Error() string {
	return fmt.Sprintf("template structure: anchor %q not found", e.Anchor)
}

// NewTemplateStructureError creates a new TemplateStructureError.
func NewTemplateStructureError(anchor string) *TemplateStructureError {
	return &TemplateStructureError{Anchor: anchor}
}
