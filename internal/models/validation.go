package models

import "fmt"

// ValidationError reports a field that does not satisfy the schema
type ValidationError struct {
	Entity  string `json:"entity"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s %s", e.Entity, e.Field, e.Message)
}

func invalid(entity, field, message string) error {
	return &ValidationError{Entity: entity, Field: field, Message: message}
}
