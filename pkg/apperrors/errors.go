package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class in API responses.
type ErrorCode string

// AppError is the application error carried from services up to the
// HTTP layer. HTTPCode and the wrapped error are never serialized.
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
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrUserNotVerified    = New(CodeUserNotVerified, "User not verified", http.StatusForbidden)
	ErrUserSuspended      = New(CodeUserSuspended, "User account suspended", http.StatusForbidden)
	ErrUserBanned         = New(CodeUserBanned, "User account banned", http.StatusForbidden)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Profiles
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Applications
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrApplicationDecided  = New("APPLICATION_ALREADY_DECIDED", "Application has already been decided", http.StatusBadRequest)

	// Gigs
	ErrGigNotFound          = New(CodeGigNotFound, "Gig not found", http.StatusNotFound)
	ErrGigAccessDenied      = New("GIG_ACCESS_DENIED", "Not a participant of this gig", http.StatusForbidden)
	ErrInvalidGigTransition = New("INVALID_GIG_TRANSITION", "Gig status transition not allowed", http.StatusBadRequest)

	// Reviews
	ErrInvalidRating = New("INVALID_RATING", "Rating must be between 1 and 5", http.StatusBadRequest)

	// Messages
	ErrMessageNotFound    = New(CodeMessageNotFound, "Message not found", http.StatusNotFound)
	ErrSelfMessage        = New("SELF_MESSAGE", "Cannot send a message to yourself", http.StatusBadRequest)
	ErrNotMessageReceiver = New("NOT_MESSAGE_RECEIVER", "Only the receiver can mark a message as read", http.StatusForbidden)

	// Invitations
	ErrInvitationNotFound = New(CodeInvitationNotFound, "Invitation not found", http.StatusNotFound)
	ErrInvitationExpired  = New("INVITATION_EXPIRED", "Invitation has expired", http.StatusBadRequest)
	ErrInvitationAccepted = New("INVITATION_ACCEPTED", "Invitation has already been accepted", http.StatusConflict)

	// Notifications
	ErrNotificationFailed = New(CodeNotificationFailed, "Notification delivery failed", http.StatusBadGateway)

	// Uploads
	ErrFileTooLarge        = New("FILE_TOO_LARGE", "File exceeds the maximum allowed size", http.StatusRequestEntityTooLarge)
	ErrUnsupportedFileType = New("UNSUPPORTED_FILE_TYPE", "File type is not allowed", http.StatusUnsupportedMediaType)
)

// Helpers for errors with details.

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeUserNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}

func NewConflictError(message string) *AppError {
	return New(CodeEmailAlreadyExists, message, http.StatusConflict)
}
