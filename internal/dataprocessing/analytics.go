package dataprocessing

import (
	"sort"
	"time"
)

// DateKeyFormat is the layout used for daily engagement bucket keys.
const DateKeyFormat = "2006-01-02"

// TopLocations caps the location engagement breakdown.
const TopLocations = 5

// sortDescending orders buckets by value, highest first, breaking ties by
// key so results are deterministic.
func sortDescending(buckets AggregateResult) AggregateResult {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Value != buckets[j].Value {
			return buckets[i].Value > buckets[j].Value
		}
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// AggregateSentimentCounts groups the dataset by sentiment and counts
// records, sorted descending by count.
func AggregateSentimentCounts(dataset Dataset) AggregateResult {
	counts := make(map[string]float64)
	for _, r := range dataset {
		counts[r.Sentiment]++
	}
	buckets := make(AggregateResult, 0, len(counts))
	for key, value := range counts {
		buckets = append(buckets, Bucket{Key: key, Value: value})
	}
	return sortDescending(buckets)
}

// AggregateDailyEngagement sums engagements per calendar day in
// chronological order. The order carries the trend direction, so this is
// the one aggregate not sorted by value.
func AggregateDailyEngagement(dataset Dataset) AggregateResult {
	sums := make(map[string]float64)
	for _, r := range dataset {
		sums[r.Date.Format(DateKeyFormat)] += r.Engagements
	}
	buckets := make(AggregateResult, 0, len(sums))
	for key, value := range sums {
		buckets = append(buckets, Bucket{Key: key, Value: value})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// AggregatePlatformEngagement sums engagements per platform, sorted
// descending.
func AggregatePlatformEngagement(dataset Dataset) AggregateResult {
	sums := make(map[string]float64)
	for _, r := range dataset {
		sums[r.Platform] += r.Engagements
	}
	buckets := make(AggregateResult, 0, len(sums))
	for key, value := range sums {
		buckets = append(buckets, Bucket{Key: key, Value: value})
	}
	return sortDescending(buckets)
}

// AggregateMediaTypeCounts groups the dataset by media type and counts
// records, sorted descending by count.
func AggregateMediaTypeCounts(dataset Dataset) AggregateResult {
	counts := make(map[string]float64)
	for _, r := range dataset {
		counts[r.MediaType]++
	}
	buckets := make(AggregateResult, 0, len(counts))
	for key, value := range counts {
		buckets = append(buckets, Bucket{Key: key, Value: value})
	}
	return sortDescending(buckets)
}

// AggregateLocationEngagement sums engagements per location, sorted
// descending and truncated to the top five. Records with a blank location
// are skipped; when every location is blank the result is empty, which
// signals "no chart" to the caller.
func AggregateLocationEngagement(dataset Dataset) AggregateResult {
	sums := make(map[string]float64)
	for _, r := range dataset {
		if r.Location == "" {
			continue
		}
		sums[r.Location] += r.Engagements
	}
	buckets := make(AggregateResult, 0, len(sums))
	for key, value := range sums {
		buckets = append(buckets, Bucket{Key: key, Value: value})
	}
	buckets = sortDescending(buckets)
	if len(buckets) > TopLocations {
		buckets = buckets[:TopLocations]
	}
	return buckets
}

// parseDateKey converts a daily bucket key back to its calendar date.
// Keys are produced by AggregateDailyEngagement, so parsing cannot fail
// for well-formed input; a zero time is returned otherwise.
func parseDateKey(key string) time.Time {
	t, _ := time.Parse(DateKeyFormat, key)
	return t
}
