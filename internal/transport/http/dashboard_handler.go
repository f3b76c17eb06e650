package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"mediapulse/internal/dataprocessing"
	apierrors "mediapulse/internal/errors"
	"mediapulse/internal/middleware"
)

// DashboardHandler handles dataset uploads and dashboard queries.
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
	maxBytes     int64
}

// NewDashboardHandler creates a dashboard handler. maxBytes caps the
// accepted upload size.
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxBytes int64) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
		maxBytes:     maxBytes,
	}
}

// Routes returns the dataset routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.UploadDataset)
	r.Route("/{id}", func(r chi.Router) {
		r.Use(h.DatasetCtx)
		r.Get("/", h.GetDataset)
		r.Get("/dashboard", h.GetDashboard)
	})

	return r
}

// DatasetCtx validates the dataset id parameter.
func (h *DashboardHandler) DatasetCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "" {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("id", "Dataset id is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UploadDataset handles POST /api/datasets. The body is a multipart form
// with the table export in the "file" field.
func (h *DashboardHandler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "Multipart field 'file' is required"))
		return
	}
	defer file.Close()

	h.logger.InfoContext(r.Context(), "processing upload",
		slog.String("request_id", reqID),
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size),
	)

	meta, err := h.service.Upload(r.Context(), header.Filename, file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   meta,
	})
}

// GetDataset handles GET /api/datasets/{id}.
func (h *DashboardHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := chi.URLParam(r, "id")

	meta, err := h.service.Meta(r.Context(), datasetID)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   meta,
	})
}

// dashboardQuery carries the user's filter selections. Absent dates mean
// the dataset's full span; absent category params mean no constraint.
type dashboardQuery struct {
	Start     string `validate:"omitempty,datetime=2006-01-02"`
	End       string `validate:"omitempty,datetime=2006-01-02"`
	Platform  string
	Sentiment string
	MediaType string
}

// GetDashboard handles GET /api/datasets/{id}/dashboard with query params
// start, end, platform, sentiment, media_type.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())
	datasetID := chi.URLParam(r, "id")

	q := dashboardQuery{
		Start:     r.URL.Query().Get("start"),
		End:       r.URL.Query().Get("end"),
		Platform:  r.URL.Query().Get("platform"),
		Sentiment: r.URL.Query().Get("sentiment"),
		MediaType: r.URL.Query().Get("media_type"),
	}
	if err := h.validate.Struct(q); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("date", "Dates must use the 2006-01-02 format"))
		return
	}

	spec := dataprocessing.FilterSpec{
		Platform:  optional(q.Platform),
		Sentiment: optional(q.Sentiment),
		MediaType: optional(q.MediaType),
	}
	if q.Start != "" {
		spec.Start, _ = time.Parse(dataprocessing.DateKeyFormat, q.Start)
	}
	if q.End != "" {
		spec.End, _ = time.Parse(dataprocessing.DateKeyFormat, q.End)
	}

	h.logger.InfoContext(r.Context(), "computing dashboard",
		slog.String("request_id", reqID),
		slog.String("dataset_id", datasetID),
		slog.String("start", q.Start),
		slog.String("end", q.End),
	)

	dashboard, err := h.service.Dashboard(r.Context(), datasetID, spec)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   dashboard,
	})
}

// optional converts an absent query param to the "no constraint" sentinel.
// An empty string never matches a record value, so it cannot be a real
// constraint either.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
