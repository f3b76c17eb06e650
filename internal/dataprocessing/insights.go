package dataprocessing

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Insight generators turn an AggregateResult into 0-3 short observation
// strings for the dashboard. They are pure string formatting over already
// computed aggregates; percentages always divide by the filtered dataset's
// own totals so the text agrees with the chart it annotates.

var insightPrinter = message.NewPrinter(language.English)

// formatWhole renders a value rounded to the nearest whole number with
// thousands separators, e.g. 1234.6 -> "1,235".
func formatWhole(value float64) string {
	return insightPrinter.Sprintf("%d", int64(math.Round(value)))
}

// percentOf guards against a zero denominator; an all-zero aggregate reads
// as 0% rather than NaN.
func percentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// SentimentInsights describes the sentiment count breakdown. totalPosts is
// the filtered dataset's row count, the same denominator the chart uses.
func SentimentInsights(agg AggregateResult, totalPosts int) []string {
	if len(agg) == 0 {
		return nil
	}
	insights := []string{
		fmt.Sprintf("Audience reception is largely %s, accounting for %.1f%% of all posts.",
			agg[0].Key, percentOf(agg[0].Value, float64(totalPosts))),
	}
	if len(agg) >= 3 {
		minority := agg[len(agg)-1]
		insights = append(insights, fmt.Sprintf(
			"The %s sentiment is a significant minority, suggesting a need to investigate the posts driving it.",
			minority.Key))
	}
	insights = append(insights,
		"The current sentiment mix indicates the overall tone of the content; efforts should focus on increasing positive interactions.")
	return insights
}

// TrendInsights describes the chronological daily engagement series.
// rowCount is the filtered dataset's row count; fewer than two rows means
// there is no trend to report. Direction is a two-endpoint comparison of
// the series, not a regression.
func TrendInsights(daily AggregateResult, rowCount int) []string {
	if rowCount < 2 || len(daily) == 0 {
		return nil
	}

	peak := daily[0]
	for _, b := range daily[1:] {
		if b.Value > peak.Value {
			peak = b
		}
	}

	direction := "stable or declining"
	if daily[len(daily)-1].Value > daily[0].Value {
		direction = "upward"
	}

	mean := daily.Total() / float64(len(daily))

	return []string{
		fmt.Sprintf("The highest engagement was on %s, suggesting a highly successful post or event worth analyzing.",
			parseDateKey(peak.Key).Format("January 2, 2006")),
		fmt.Sprintf("The engagement trend shows a general %s trajectory.", direction),
		fmt.Sprintf("The average engagement per day is %s, serving as a baseline for future content.",
			formatWhole(mean)),
	}
}

// PlatformInsights describes the platform engagement breakdown.
func PlatformInsights(agg AggregateResult) []string {
	if len(agg) == 0 {
		return nil
	}
	insights := []string{
		fmt.Sprintf("%s is the primary engagement driver, accounting for %.1f%% of total engagement.",
			agg[0].Key, percentOf(agg[0].Value, agg.Total())),
	}
	if len(agg) > 1 {
		insights = append(insights,
			"There is a clear performance gap between platforms, highlighting where resources are most effective.")
	}
	insights = append(insights,
		"Content and ad spend should be prioritized towards the most engaging platforms.")
	return insights
}

// MediaTypeInsights describes the media type count breakdown.
func MediaTypeInsights(agg AggregateResult) []string {
	if len(agg) == 0 {
		return nil
	}
	insights := []string{
		fmt.Sprintf("The content strategy is heavily reliant on %s.", agg[0].Key),
	}
	if len(agg) > 1 {
		insights = append(insights, fmt.Sprintf(
			"The least used format, %s, could be an area for growth and audience diversification.",
			agg[len(agg)-1].Key))
	}
	insights = append(insights,
		"A balanced mix of formats is key to reaching different audience segments.")
	return insights
}

// LocationInsights describes the top-location engagement breakdown. An
// empty aggregate (no usable location data) produces no insights, matching
// the "no chart" signal from AggregateLocationEngagement.
func LocationInsights(agg AggregateResult) []string {
	if len(agg) == 0 {
		return nil
	}
	insights := []string{
		fmt.Sprintf("Engagement is heavily concentrated in %s.", agg[0].Key),
	}
	if len(agg) > 1 {
		insights = append(insights,
			"A noticeable drop-off in engagement after the top location indicates a hyper-concentrated audience.")
	}
	insights = append(insights,
		"The top locations are clear candidates for geo-targeted campaigns and localized content.")
	return insights
}
