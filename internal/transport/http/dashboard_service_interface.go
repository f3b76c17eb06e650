package http

import (
	"context"
	"io"

	"mediapulse/internal/dataprocessing"
	"mediapulse/internal/services"
)

// DashboardServiceInterface is the service contract the dashboard handler
// depends on, kept narrow so tests can substitute a stub.
type DashboardServiceInterface interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*services.DatasetMeta, error)
	Meta(ctx context.Context, datasetID string) (*services.DatasetMeta, error)
	Dashboard(ctx context.Context, datasetID string, spec dataprocessing.FilterSpec) (*services.Dashboard, error)
}
