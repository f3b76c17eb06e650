package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseCSV reads a comma-delimited table with a header row into a
// RawTable. A UTF-8 BOM is stripped if present. Rows may be ragged; short
// rows are padded with empty cells during normalization.
func ParseCSV(r io.Reader) (RawTable, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to read upload: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return RawTable{}, fmt.Errorf("upload has no header row")
	}

	return RawTable{Columns: records[0], Rows: records[1:]}, nil
}

// ParseXLSX reads the first sheet of an Excel workbook into a RawTable.
// The first row is treated as the header.
func ParseXLSX(r io.Reader) (RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return RawTable{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return RawTable{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return RawTable{}, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	return RawTable{Columns: rows[0], Rows: rows[1:]}, nil
}
