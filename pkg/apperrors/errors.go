package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError is the application error carried from services up to the HTTP
// layer. HTTPCode and the wrapped error never reach the wire.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, HTTPCode: httpCode}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPCode: httpCode}
}

// WithDetails returns a copy carrying extra payload, so the predeclared
// sentinels stay immutable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func Is(err, target error) bool             { return stderrors.Is(err, target) }
func As(err error, target interface{}) bool { return stderrors.As(err, target) }

// Predeclared errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrAccountDisabled    = New(CodeAccountDisabled, "Account has been disabled", http.StatusForbidden)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrSystemAccount      = New(CodeSystemAccount, "System accounts cannot be modified", http.StatusForbidden)
	ErrCannotModifyAdmin  = New(CodeCannotModifyAdmin, "Admin accounts cannot be modified", http.StatusForbidden)

	// Jobs
	ErrJobNotFound = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobClosed   = New(CodeJobClosed, "This job is closed and no longer accepts applications", http.StatusBadRequest)

	// Applications
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrAlreadyApplied      = New(CodeAlreadyApplied, "You have already applied for this job", http.StatusConflict)
	ErrInvalidTransition   = New(CodeInvalidTransition, "Status transition is not allowed", http.StatusBadRequest)

	// Reviews
	ErrNotHired        = New(CodeNotHired, "You can only review companies that hired you", http.StatusForbidden)
	ErrAlreadyReviewed = New(CodeAlreadyReviewed, "You have already reviewed this company", http.StatusConflict)

	// Companies and notifications
	ErrCompanyNotFound      = New(CodeCompanyNotFound, "Company not found", http.StatusNotFound)
	ErrNotificationNotFound = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}
