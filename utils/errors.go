package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Error codes returned in the "code" field of error responses. Clients
// branch on these, the message is for humans.
const (
	CodeNotFound          = "not_found"
	CodeValidation        = "validation_error"
	CodeConflict          = "conflict"
	CodeHierarchyMismatch = "hierarchy_mismatch"
	CodeInternal          = "internal_error"

	// Publish precondition codes, so operators know which gap to fill.
	CodeMenuNoCategories = "menu_no_categories"
	CodeMenuNoItems      = "menu_no_items"
)

// AppError is the single error type crossing the controller boundary.
type AppError struct {
	Code    string
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFound(entity string) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, Message: entity + " not found"}
}

func NewValidation(message string) *AppError {
	return &AppError{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

func NewValidationCode(code, message string) *AppError {
	return &AppError{Code: code, Status: http.StatusUnprocessableEntity, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Status: http.StatusConflict, Message: message}
}

func NewHierarchyMismatch(message string) *AppError {
	return &AppError{Code: CodeHierarchyMismatch, Status: http.StatusBadRequest, Message: message}
}

func NewInternal(err error) *AppError {
	return &AppError{Code: CodeInternal, Status: http.StatusInternalServerError, Message: err.Error()}
}

// TranslateDBError maps store-level failures onto the error taxonomy so
// driver-specific codes never leak to clients.
func TranslateDBError(err error, entity string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFound(entity)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed: unique") {
		return NewConflict(fmt.Sprintf("%s already exists", entity))
	}
	if strings.Contains(msg, "foreign key constraint") {
		return NewValidation(fmt.Sprintf("invalid reference on %s", entity))
	}
	return NewInternal(err)
}
