// Package services contains the business logic between the HTTP transport
// and the dataprocessing pipeline. DashboardService owns the upload flow
// (parse, validate, normalize, cache) and dashboard queries (filter,
// aggregate, insight generation). Handlers stay thin; everything
// testable without HTTP lives here.
package services
