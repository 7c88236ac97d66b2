package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Validation errors
	ErrCodeMissingData       = "MISSING_DATA"
	ErrCodePasswordTooShort  = "PASSWORD_TOO_SHORT"
	ErrCodePasswordNoLower   = "PASSWORD_NO_LOWER"
	ErrCodePasswordNoUpper   = "PASSWORD_NO_UPPER"
	ErrCodePasswordNoDigit   = "PASSWORD_NO_DIGIT"
	ErrCodePasswordNoSpecial = "PASSWORD_NO_SPECIAL"
	ErrCodeUserExists        = "USER_EXISTS"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodePasswordIncorrect = "PASSWORD_INCORRECT"

	// Authentication errors
	ErrCodeTokenRequired = "TOKEN_REQUIRED"
	ErrCodeTokenInvalid  = "TOKEN_INVALID"

	// Resource errors
	ErrCodeTaskNotFound = "TASK_NOT_FOUND"

	// Service errors
	ErrCodeServerError = "SERVER_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// BadRequest sends a 400 response with the given code
func BadRequest(c *gin.Context, code, message string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(code, message))
}

// Unauthorized sends a 401 response with the given code
func Unauthorized(c *gin.Context, code, message string) {
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(code, message))
}

// NotFound sends a 404 response with the given code
func NotFound(c *gin.Context, code, message string) {
	RespondWithError(c, http.StatusNotFound, NewAPIError(code, message))
}

// InternalError sends a 500 response. Internal detail is never echoed to
// the caller; it belongs in the server log.
func InternalError(c *gin.Context) {
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeServerError, "Internal server error"))
}
