package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError is the structured error body returned by every failing
// endpoint.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new APIError.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details.
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidRequest  = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrNotFound        = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrPayloadTooLarge = New(http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Upload exceeds the maximum allowed size")
	ErrInternalServer  = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// ErrValidation creates a validation error with field details.
func ErrValidation(field, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", ValidationError{
		Field:   field,
		Message: message,
	})
}

// SchemaValidationError reports an upload whose header is missing required
// columns; the details carry the complete list so the user can fix the
// file in one pass.
func SchemaValidationError(missing []string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "SCHEMA_VALIDATION_FAILED",
		"Upload is missing required columns", map[string]interface{}{
			"missing_columns": missing,
		})
}

// TypeConversionFailedError reports a column whose values could not be
// converted to the expected type.
func TypeConversionFailedError(column, value, cause string) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, "TYPE_CONVERSION_FAILED",
		"Upload contains values that cannot be converted", map[string]interface{}{
			"column": column,
			"value":  value,
			"cause":  cause,
		})
}

// DatasetNotFoundError reports an unknown dataset handle.
func DatasetNotFoundError(datasetID string) *APIError {
	return NewWithDetails(http.StatusNotFound, "DATASET_NOT_FOUND",
		"Dataset not found; upload the file again", map[string]interface{}{
			"dataset_id": datasetID,
		})
}

// ErrorResponse is the standard envelope for error bodies.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse wraps an APIError in the standard envelope.
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{Success: false, Error: err}
}

// Render implements the render.Renderer interface.
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.Error.Render(w, r)
}
