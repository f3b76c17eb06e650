package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TypeConversionError reports a cell that could not be coerced to the
// column's semantic type. Only date failures are fatal; the normalizer
// never raises this for engagements.
type TypeConversionError struct {
	Column string
	Value  string
	Err    error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("column %q: cannot convert value %q: %v", e.Column, e.Value, e.Err)
}

func (e *TypeConversionError) Unwrap() error {
	return e.Err
}

// dateLayouts are the accepted date formats, tried in order. Parsed dates
// are truncated to midnight UTC so range comparisons work at calendar-day
// granularity.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// parseDate tries each accepted layout against the trimmed cell value.
func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseEngagements coerces an engagement cell to a number. Thousands
// separators are tolerated. Unparseable values become 0 rather than
// failing the row; rejecting an otherwise valid row over one bad cell is
// worse than losing the cell.
func parseEngagements(value string) float64 {
	clean := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if clean == "" {
		return 0
	}
	n, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return n
}

// Normalize converts a schema-validated table into a typed Dataset. Any
// unparseable date fails the whole run with a *TypeConversionError; there
// is no partial success. The input table must have passed ValidateSchema.
func Normalize(table RawTable) (Dataset, error) {
	idx := columnIndex(table.Columns)

	cell := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	dataset := make(Dataset, 0, len(table.Rows))
	for _, row := range table.Rows {
		date, err := parseDate(cell(row, "date"))
		if err != nil {
			return nil, &TypeConversionError{Column: "date", Value: cell(row, "date"), Err: err}
		}

		dataset = append(dataset, Record{
			Date:        date,
			Platform:    strings.TrimSpace(cell(row, "platform")),
			Sentiment:   strings.TrimSpace(cell(row, "sentiment")),
			Location:    strings.TrimSpace(cell(row, "location")),
			Engagements: parseEngagements(cell(row, "engagements")),
			MediaType:   strings.TrimSpace(cell(row, "media_type")),
		})
	}

	return dataset, nil
}
