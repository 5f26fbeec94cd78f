package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound          ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound  ErrorCode = "APPLICATION_NOT_FOUND"
	CodeCompanyNotFound      ErrorCode = "COMPANY_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeJobClosed          ErrorCode = "JOB_CLOSED"
	CodeAlreadyApplied     ErrorCode = "ALREADY_APPLIED"
	CodeAlreadyReviewed    ErrorCode = "ALREADY_REVIEWED"
	CodeNotHired           ErrorCode = "NOT_HIRED"
	CodeInvalidTransition  ErrorCode = "INVALID_STATUS_TRANSITION"
	CodeSystemAccount      ErrorCode = "SYSTEM_ACCOUNT_PROTECTED"
	CodeCannotModifyAdmin  ErrorCode = "CANNOT_MODIFY_ADMIN"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
