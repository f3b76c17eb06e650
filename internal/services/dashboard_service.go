package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mediapulse/internal/dataprocessing"
	"mediapulse/internal/infrastructure"
)

// DatasetMeta describes a cleaned, cached dataset and the distinct
// category values the front end offers as filter options.
type DatasetMeta struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Rows        int       `json:"rows"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Platforms   []string  `json:"platforms"`
	Sentiments  []string  `json:"sentiments"`
	MediaTypes  []string  `json:"media_types"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Panel pairs one chart's aggregate data with its insight strings.
type Panel struct {
	Chart    dataprocessing.AggregateResult `json:"chart"`
	Insights []string                       `json:"insights"`
}

// Dashboard is one full render of the five chart and insight pairs over a
// filtered dataset. Empty marks a filter selection that matched nothing;
// the front end shows a notice instead of charts.
type Dashboard struct {
	DatasetID    string `json:"dataset_id"`
	TotalRows    int    `json:"total_rows"`
	FilteredRows int    `json:"filtered_rows"`
	Empty        bool   `json:"empty"`
	Sentiment    Panel  `json:"sentiment"`
	Trend        Panel  `json:"trend"`
	Platform     Panel  `json:"platform"`
	MediaType    Panel  `json:"media_type"`
	Location     Panel  `json:"location"`
}

// DashboardService runs the cleaning and analytics pipeline for the
// dashboard handlers.
type DashboardService struct {
	store   *dataprocessing.CleanStore
	logger  *slog.Logger
	maxRows int
}

// NewDashboardService creates a dashboard service. maxRows of 0 disables
// the row limit.
func NewDashboardService(store *dataprocessing.CleanStore, logger *slog.Logger, maxRows int) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		store:   store,
		logger:  logger.With(slog.String("component", "dashboard_service")),
		maxRows: maxRows,
	}
}

// Upload ingests one table export. The raw bytes are fingerprinted first;
// a repeated upload of the same content returns the cached dataset without
// re-validating. Schema and date conversion failures are returned as
// *dataprocessing.SchemaError and *dataprocessing.TypeConversionError for
// the transport layer to surface in full.
func (s *DashboardService) Upload(ctx context.Context, filename string, r io.Reader) (*DatasetMeta, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		infrastructure.RecordUpload("read_error")
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	fingerprint := dataprocessing.Fingerprint(raw)
	if cached, ok := s.store.GetByFingerprint(fingerprint); ok {
		infrastructure.RecordCacheHit()
		s.logger.InfoContext(ctx, "upload served from cache",
			slog.String("dataset_id", cached.ID),
			slog.String("filename", filename))
		return s.metaFor(cached), nil
	}

	table, err := s.parse(filename, raw)
	if err != nil {
		infrastructure.RecordUpload("parse_error")
		return nil, err
	}

	validated, err := dataprocessing.ValidateSchema(table)
	if err != nil {
		infrastructure.RecordUpload("schema_error")
		return nil, err
	}

	dataset, err := dataprocessing.Normalize(validated)
	if err != nil {
		infrastructure.RecordUpload("conversion_error")
		return nil, err
	}

	if len(dataset) == 0 {
		infrastructure.RecordUpload("empty")
		return nil, ErrEmptyUpload
	}
	if s.maxRows > 0 && len(dataset) > s.maxRows {
		infrastructure.RecordUpload("too_large")
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrDatasetTooLarge, len(dataset), s.maxRows)
	}

	cached := s.store.Put(fingerprint, dataset)
	infrastructure.RecordUpload("success")

	s.logger.InfoContext(ctx, "upload processed",
		slog.String("dataset_id", cached.ID),
		slog.String("filename", filename),
		slog.Int("rows", len(dataset)))

	return s.metaFor(cached), nil
}

// Meta returns the metadata for a cached dataset.
func (s *DashboardService) Meta(ctx context.Context, datasetID string) (*DatasetMeta, error) {
	cached, ok := s.store.GetByID(datasetID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, datasetID)
	}
	return s.metaFor(cached), nil
}

// Dashboard filters the cached dataset and computes the five chart and
// insight pairs. A zero Start or End in the spec defaults to the dataset's
// own date span. The aggregators are pure and independent, so they run
// concurrently.
func (s *DashboardService) Dashboard(ctx context.Context, datasetID string, spec dataprocessing.FilterSpec) (*Dashboard, error) {
	cached, ok := s.store.GetByID(datasetID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, datasetID)
	}

	minDate, maxDate := dateSpan(cached.Dataset)
	if spec.Start.IsZero() {
		spec.Start = minDate
	}
	if spec.End.IsZero() {
		spec.End = maxDate
	}
	if spec.Start.After(spec.End) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			spec.Start.Format(dataprocessing.DateKeyFormat),
			spec.End.Format(dataprocessing.DateKeyFormat))
	}

	infrastructure.RecordDashboardQuery()

	filtered := dataprocessing.Filter(cached.Dataset, spec)
	dashboard := &Dashboard{
		DatasetID:    cached.ID,
		TotalRows:    len(cached.Dataset),
		FilteredRows: len(filtered),
	}
	if len(filtered) == 0 {
		dashboard.Empty = true
		s.logger.InfoContext(ctx, "filter matched no records",
			slog.String("dataset_id", cached.ID))
		return dashboard, nil
	}

	var (
		sentiment dataprocessing.AggregateResult
		daily     dataprocessing.AggregateResult
		platform  dataprocessing.AggregateResult
		mediaType dataprocessing.AggregateResult
		location  dataprocessing.AggregateResult
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { sentiment = dataprocessing.AggregateSentimentCounts(filtered); return nil })
	g.Go(func() error { daily = dataprocessing.AggregateDailyEngagement(filtered); return nil })
	g.Go(func() error { platform = dataprocessing.AggregatePlatformEngagement(filtered); return nil })
	g.Go(func() error { mediaType = dataprocessing.AggregateMediaTypeCounts(filtered); return nil })
	g.Go(func() error { location = dataprocessing.AggregateLocationEngagement(filtered); return nil })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard.Sentiment = Panel{Chart: sentiment, Insights: dataprocessing.SentimentInsights(sentiment, len(filtered))}
	dashboard.Trend = Panel{Chart: daily, Insights: dataprocessing.TrendInsights(daily, len(filtered))}
	dashboard.Platform = Panel{Chart: platform, Insights: dataprocessing.PlatformInsights(platform)}
	dashboard.MediaType = Panel{Chart: mediaType, Insights: dataprocessing.MediaTypeInsights(mediaType)}
	dashboard.Location = Panel{Chart: location, Insights: dataprocessing.LocationInsights(location)}

	s.logger.InfoContext(ctx, "dashboard computed",
		slog.String("dataset_id", cached.ID),
		slog.Int("filtered_rows", len(filtered)))

	return dashboard, nil
}

// parse dispatches on the upload's file extension.
func (s *DashboardService) parse(filename string, raw []byte) (dataprocessing.RawTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", "":
		return dataprocessing.ParseCSV(strings.NewReader(string(raw)))
	case ".xlsx", ".xlsm":
		return dataprocessing.ParseXLSX(strings.NewReader(string(raw)))
	default:
		return dataprocessing.RawTable{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// metaFor builds the dataset metadata, including sorted distinct category
// values for the UI filter selectors.
func (s *DashboardService) metaFor(cached *dataprocessing.CachedDataset) *DatasetMeta {
	minDate, maxDate := dateSpan(cached.Dataset)
	return &DatasetMeta{
		ID:          cached.ID,
		Fingerprint: cached.Fingerprint,
		Rows:        len(cached.Dataset),
		StartDate:   minDate.Format(dataprocessing.DateKeyFormat),
		EndDate:     maxDate.Format(dataprocessing.DateKeyFormat),
		Platforms:   distinct(cached.Dataset, func(r dataprocessing.Record) string { return r.Platform }),
		Sentiments:  distinct(cached.Dataset, func(r dataprocessing.Record) string { return r.Sentiment }),
		MediaTypes:  distinct(cached.Dataset, func(r dataprocessing.Record) string { return r.MediaType }),
		UploadedAt:  cached.UploadedAt,
	}
}

// dateSpan returns the earliest and latest record dates.
func dateSpan(dataset dataprocessing.Dataset) (time.Time, time.Time) {
	if len(dataset) == 0 {
		return time.Time{}, time.Time{}
	}
	min, max := dataset[0].Date, dataset[0].Date
	for _, r := range dataset[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max
}

// distinct returns the sorted unique non-empty values of one category
// column.
func distinct(dataset dataprocessing.Dataset, key func(dataprocessing.Record) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, r := range dataset {
		v := key(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
