package services

import "errors"

// Sentinel errors returned by DashboardService. The HTTP layer maps these
// to response codes with errors.Is.
var (
	// ErrDatasetNotFound indicates the dataset handle is unknown, either
	// never uploaded or evicted by a restart.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrInvalidDateRange indicates the filter's start date is after its
	// end date.
	ErrInvalidDateRange = errors.New("start date is after end date")

	// ErrUnsupportedFormat indicates an upload extension the parser does
	// not handle.
	ErrUnsupportedFormat = errors.New("unsupported upload format")

	// ErrDatasetTooLarge indicates the upload exceeds the configured row
	// limit.
	ErrDatasetTooLarge = errors.New("dataset exceeds the configured row limit")

	// ErrEmptyUpload indicates the upload contained a header but no data
	// rows.
	ErrEmptyUpload = errors.New("upload contains no data rows")
)
