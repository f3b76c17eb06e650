package dataprocessing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		input := "Date,Platform,Sentiment,Location,Engagements,Media Type\n" +
			"2024-01-01,X,Positive,NY,10,Video\n" +
			"2024-01-01,Y,Negative,NY,5,Photo\n"

		table, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{"Date", "Platform", "Sentiment", "Location", "Engagements", "Media Type"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, []string{"2024-01-01", "X", "Positive", "NY", "10", "Video"}, table.Rows[0])
	})

	t.Run("strips utf8 bom", func(t *testing.T) {
		input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Platform\n2024-01-01,X\n")...)

		table, err := ParseCSV(bytes.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "Date", table.Columns[0])
	})

	t.Run("ragged rows tolerated", func(t *testing.T) {
		table, err := ParseCSV(strings.NewReader("a,b,c\n1,2\n1,2,3,4\n"))
		require.NoError(t, err)
		assert.Len(t, table.Rows, 2)
	})

	t.Run("empty input rejected", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Date", "Platform", "Sentiment", "Location", "Engagements", "Media Type"},
		{"2024-01-01", "X", "Positive", "NY", 10, "Video"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := ParseXLSX(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Media Type", table.Columns[5])
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "X", table.Rows[0][1])
}

func TestCSVAndXLSXNormalizeIdentically(t *testing.T) {
	csvTable, err := ParseCSV(strings.NewReader(
		"Date,Platform,Sentiment,Location,Engagements,Media Type\n2024-01-01,X,Positive,NY,10,Video\n"))
	require.NoError(t, err)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Platform", "Sentiment", "Location", "Engagements", "Media Type"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2024-01-01", "X", "Positive", "NY", "10", "Video"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	xlsxTable, err := ParseXLSX(&buf)
	require.NoError(t, err)

	cleanFromCSV, err := ValidateSchema(csvTable)
	require.NoError(t, err)
	cleanFromXLSX, err := ValidateSchema(xlsxTable)
	require.NoError(t, err)

	dsCSV, err := Normalize(cleanFromCSV)
	require.NoError(t, err)
	dsXLSX, err := Normalize(cleanFromXLSX)
	require.NoError(t, err)

	assert.Equal(t, dsCSV, dsXLSX)
}
