package dataprocessing

// Filter returns the sub-sequence of records inside the spec's inclusive
// date range that match every set category constraint. Record order is
// preserved. An empty result is a normal value, not an error; callers
// render a "nothing to show" notice instead of charts.
func Filter(dataset Dataset, spec FilterSpec) Dataset {
	filtered := make(Dataset, 0, len(dataset))
	for _, r := range dataset {
		if r.Date.Before(spec.Start) || r.Date.After(spec.End) {
			continue
		}
		if spec.Platform != nil && r.Platform != *spec.Platform {
			continue
		}
		if spec.Sentiment != nil && r.Sentiment != *spec.Sentiment {
			continue
		}
		if spec.MediaType != nil && r.MediaType != *spec.MediaType {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
