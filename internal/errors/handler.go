package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"

	"mediapulse/internal/dataprocessing"
	"mediapulse/internal/middleware"
	"mediapulse/internal/services"
)

// ErrorHandler provides centralized error handling for the HTTP layer. It
// maps pipeline and service errors to APIError responses and logs each
// failure with its request ID.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError converts any error to an APIError response and writes it.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	render.Render(w, r, NewErrorResponse(h.toAPIError(err)))
}

// toAPIError maps domain errors onto the API error taxonomy.
func (h *ErrorHandler) toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var schemaErr *dataprocessing.SchemaError
	if errors.As(err, &schemaErr) {
		return SchemaValidationError(schemaErr.Missing)
	}

	var convErr *dataprocessing.TypeConversionError
	if errors.As(err, &convErr) {
		cause := ""
		if convErr.Err != nil {
			cause = convErr.Err.Error()
		}
		return TypeConversionFailedError(convErr.Column, convErr.Value, cause)
	}

	switch {
	case errors.Is(err, services.ErrDatasetNotFound):
		return New(http.StatusNotFound, "DATASET_NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrInvalidDateRange):
		return New(http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
	case errors.Is(err, services.ErrUnsupportedFormat):
		return New(http.StatusUnsupportedMediaType, "UNSUPPORTED_FORMAT", err.Error())
	case errors.Is(err, services.ErrDatasetTooLarge):
		return New(http.StatusRequestEntityTooLarge, "DATASET_TOO_LARGE", err.Error())
	case errors.Is(err, services.ErrEmptyUpload):
		return New(http.StatusBadRequest, "EMPTY_UPLOAD", err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return New(http.StatusGatewayTimeout, "REQUEST_TIMEOUT", "The request took too long to process")
	default:
		return ErrInternalServer
	}
}

// HandlePanic recovers from handler panics with a 500 response.
func (h *ErrorHandler) HandlePanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	h.logger.ErrorContext(r.Context(), "panic recovered",
		slog.Any("panic", recovered),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("stack", string(debug.Stack())),
	)
	render.Render(w, r, NewErrorResponse(ErrInternalServer))
}

// NotFound is the router's fallback 404 handler.
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	render.Render(w, r, NewErrorResponse(ErrNotFound))
}
