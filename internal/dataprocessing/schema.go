package dataprocessing

import (
	"fmt"
	"strings"
)

// RequiredColumns is the canonical column set every upload must provide,
// after column names are normalized.
var RequiredColumns = []string{"date", "platform", "sentiment", "location", "engagements", "media_type"}

// SchemaError reports every required column missing from an upload, not
// just the first, so the caller can show the complete list in one message.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// NormalizeColumnName converts an arbitrary header cell to the canonical
// lowercase-with-underscores form: "  Media Type " -> "media_type".
func NormalizeColumnName(name string) string {
	clean := strings.TrimPrefix(name, "\ufeff")
	clean = strings.TrimSpace(clean)
	clean = strings.ToLower(clean)
	return strings.ReplaceAll(clean, " ", "_")
}

// ValidateSchema normalizes the table's column names and checks that every
// required column is present. Cell values are left untouched. Returns a
// *SchemaError listing all missing columns when validation fails.
func ValidateSchema(table RawTable) (RawTable, error) {
	normalized := make([]string, len(table.Columns))
	present := make(map[string]bool, len(table.Columns))
	for i, col := range table.Columns {
		normalized[i] = NormalizeColumnName(col)
		present[normalized[i]] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return RawTable{}, &SchemaError{Missing: missing}
	}

	return RawTable{Columns: normalized, Rows: table.Rows}, nil
}

// columnIndex maps a normalized column name to its position in the header.
// The first occurrence wins when a column appears twice.
func columnIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, seen := idx[col]; !seen {
			idx[col] = i
		}
	}
	return idx
}
