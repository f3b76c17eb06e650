package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumnName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "date", want: "date"},
		{name: "mixed case", input: "Platform", want: "platform"},
		{name: "spaces to underscores", input: "Media Type", want: "media_type"},
		{name: "surrounding whitespace", input: "  Engagements  ", want: "engagements"},
		{name: "underscore variant", input: "Media_Type", want: "media_type"},
		{name: "utf8 bom", input: "\ufeffDate", want: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeColumnName(tt.input))
		})
	}
}

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name        string
		columns     []string
		wantMissing []string
	}{
		{
			name:    "all columns present",
			columns: []string{"Date", "Platform", "Sentiment", "Location", "Engagements", "Media Type"},
		},
		{
			name:        "location missing",
			columns:     []string{"Date", "Platform", "Sentiment", "Engagements", "Media Type"},
			wantMissing: []string{"location"},
		},
		{
			name:        "reports every missing column",
			columns:     []string{"Date", "Sentiment"},
			wantMissing: []string{"platform", "location", "engagements", "media_type"},
		},
		{
			name:        "empty header",
			columns:     nil,
			wantMissing: []string{"date", "platform", "sentiment", "location", "engagements", "media_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ValidateSchema(RawTable{Columns: tt.columns})

			if len(tt.wantMissing) == 0 {
				require.NoError(t, err)
				for _, col := range RequiredColumns {
					assert.Contains(t, table.Columns, col)
				}
				return
			}

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantMissing, schemaErr.Missing)
		})
	}
}

func TestValidateSchemaKeepsValues(t *testing.T) {
	table := RawTable{
		Columns: []string{"Date", "Platform", "Sentiment", "Location", "Engagements", "Media Type"},
		Rows:    [][]string{{"2024-01-01", "X", "Positive", "NY", "10", "Video"}},
	}

	validated, err := ValidateSchema(table)
	require.NoError(t, err)
	assert.Equal(t, table.Rows, validated.Rows)
}
