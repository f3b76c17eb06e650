package dataprocessing

import (
	"time"
)

// RawTable holds an uploaded table after parsing but before any validation
// or type conversion. All cells are raw text.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Record is one cleaned row of the upload.
type Record struct {
	Date        time.Time `json:"date"`
	Platform    string    `json:"platform"`
	Sentiment   string    `json:"sentiment"`
	Location    string    `json:"location"`
	Engagements float64   `json:"engagements"`
	MediaType   string    `json:"media_type"`
}

// Dataset is an ordered sequence of cleaned records sharing the validated
// schema.
type Dataset []Record

// FilterSpec selects a sub-sequence of a Dataset. The date range is
// inclusive on both ends; Start must not be after End (enforced by the
// caller). The category constraints are tagged optionals: a nil pointer
// means "no constraint", so a category literally named "All" is never
// misread as a wildcard.
type FilterSpec struct {
	Start     time.Time
	End       time.Time
	Platform  *string
	Sentiment *string
	MediaType *string
}

// Bucket is one category of an aggregate: a key and its summed or counted
// value.
type Bucket struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// AggregateResult is an ordered category breakdown. All aggregates are
// sorted descending by value except the daily engagement series, which is
// chronological.
type AggregateResult []Bucket

// Total returns the sum of all bucket values.
func (a AggregateResult) Total() float64 {
	var total float64
	for _, b := range a {
		total += b.Value
	}
	return total
}
