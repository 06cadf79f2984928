package types

import (
	"fmt"
	"strings"
)

// Error taxonomy type tags.
const (
	ErrorTypeSchema     = "schema"
	ErrorTypeValidation = "validation"
	ErrorTypeNotFound   = "not_found"
	ErrorTypeInternal   = "internal"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError aggregates business-rule violations into a single 400
// error, one message per violated constraint.
func NewValidationError(violations []string) *CustomError {
	return &CustomError{
		Code:    400,
		Message: strings.Join(violations, "; "),
		Type:    ErrorTypeValidation,
	}
}
