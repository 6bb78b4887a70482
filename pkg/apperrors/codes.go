package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeGigNotFound         ErrorCode = "GIG_NOT_FOUND"
	CodeMessageNotFound     ErrorCode = "MESSAGE_NOT_FOUND"
	CodeInvitationNotFound  ErrorCode = "INVITATION_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified    ErrorCode = "USER_NOT_VERIFIED"
	CodeUserSuspended      ErrorCode = "USER_SUSPENDED"
	CodeUserBanned         ErrorCode = "USER_BANNED"
	CodeNotificationFailed ErrorCode = "NOTIFICATION_FAILED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
)
