package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSentimentCounts(t *testing.T) {
	dataset := Dataset{
		{Date: day(2024, 1, 1), Platform: "X", Sentiment: "Positive", Location: "NY", Engagements: 10, MediaType: "Video"},
		{Date: day(2024, 1, 1), Platform: "Y", Sentiment: "Negative", Location: "NY", Engagements: 5, MediaType: "Photo"},
	}

	got := AggregateSentimentCounts(dataset)
	require.Len(t, got, 2)
	assert.Equal(t, AggregateResult{
		{Key: "Negative", Value: 1},
		{Key: "Positive", Value: 1},
	}, got)
}

func TestAggregateDailyEngagementChronological(t *testing.T) {
	dataset := Dataset{
		{Date: day(2024, 1, 3), Engagements: 7},
		{Date: day(2024, 1, 1), Engagements: 10},
		{Date: day(2024, 1, 1), Engagements: 2},
		{Date: day(2024, 1, 2), Engagements: 100},
	}

	got := AggregateDailyEngagement(dataset)
	require.Len(t, got, 3)
	assert.Equal(t, AggregateResult{
		{Key: "2024-01-01", Value: 12},
		{Key: "2024-01-02", Value: 100},
		{Key: "2024-01-03", Value: 7},
	}, got, "daily series must stay chronological, not sorted by value")
}

func TestAggregatePlatformEngagement(t *testing.T) {
	dataset := Dataset{
		{Date: day(2024, 1, 1), Platform: "X", Engagements: 10},
		{Date: day(2024, 1, 1), Platform: "Y", Engagements: 5},
		{Date: day(2024, 1, 2), Platform: "Y", Engagements: 25},
	}

	got := AggregatePlatformEngagement(dataset)
	assert.Equal(t, AggregateResult{
		{Key: "Y", Value: 30},
		{Key: "X", Value: 10},
	}, got)
}

func TestAggregatePlatformEngagementTotalMatchesDataset(t *testing.T) {
	dataset := sampleDataset()

	var want float64
	for _, r := range dataset {
		want += r.Engagements
	}
	assert.Equal(t, want, AggregatePlatformEngagement(dataset).Total())
}

func TestAggregateMediaTypeCounts(t *testing.T) {
	dataset := Dataset{
		{Date: day(2024, 1, 1), MediaType: "Video"},
		{Date: day(2024, 1, 1), MediaType: "Video"},
		{Date: day(2024, 1, 1), MediaType: "Photo"},
	}

	got := AggregateMediaTypeCounts(dataset)
	assert.Equal(t, AggregateResult{
		{Key: "Video", Value: 2},
		{Key: "Photo", Value: 1},
	}, got)
}

func TestAggregateLocationEngagement(t *testing.T) {
	t.Run("top five descending", func(t *testing.T) {
		var dataset Dataset
		locations := []string{"A", "B", "C", "D", "E", "F", "G"}
		for i, loc := range locations {
			dataset = append(dataset, Record{
				Date:        day(2024, 1, 1),
				Location:    loc,
				Engagements: float64((i + 1) * 10),
			})
		}

		got := AggregateLocationEngagement(dataset)
		require.Len(t, got, TopLocations)
		assert.Equal(t, "G", got[0].Key)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Value, got[i].Value)
		}
	})

	t.Run("blank locations skipped", func(t *testing.T) {
		dataset := Dataset{
			{Date: day(2024, 1, 1), Location: "", Engagements: 99},
			{Date: day(2024, 1, 1), Location: "NY", Engagements: 5},
		}
		got := AggregateLocationEngagement(dataset)
		assert.Equal(t, AggregateResult{{Key: "NY", Value: 5}}, got)
	})

	t.Run("entirely blank yields empty result", func(t *testing.T) {
		dataset := Dataset{
			{Date: day(2024, 1, 1), Engagements: 10},
			{Date: day(2024, 1, 2), Engagements: 20},
		}
		assert.Empty(t, AggregateLocationEngagement(dataset))
	})
}

func TestAggregatorsOnEmptyDataset(t *testing.T) {
	empty := Dataset{}

	assert.Empty(t, AggregateSentimentCounts(empty))
	assert.Empty(t, AggregateDailyEngagement(empty))
	assert.Empty(t, AggregatePlatformEngagement(empty))
	assert.Empty(t, AggregateMediaTypeCounts(empty))
	assert.Empty(t, AggregateLocationEngagement(empty))
}

func TestAggregatorsDoNotMutateInput(t *testing.T) {
	dataset := sampleDataset()
	snapshot := make(Dataset, len(dataset))
	copy(snapshot, dataset)

	AggregateSentimentCounts(dataset)
	AggregateDailyEngagement(dataset)
	AggregatePlatformEngagement(dataset)
	AggregateMediaTypeCounts(dataset)
	AggregateLocationEngagement(dataset)

	assert.Equal(t, snapshot, dataset)
}

func TestParseDateKey(t *testing.T) {
	assert.True(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Equal(parseDateKey("2024-06-01")))
}
