package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrNoSheets = errors.New("workbook has no sheets")

// ReadFirstSheet returns every row of the first sheet as raw cell strings.
// Trailing empty cells are dropped by excelize.
func ReadFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return rows, nil
}

// Table is a single-sheet workbook: an optional title row, a bold header row
// and data rows below it.
type Table struct {
	Sheet   string
	Title   string
	Header  []string
	Rows    [][]any
	Widths  []float64
	Summary [][]any
}

// Render writes the table as an XLSX workbook.
func (t Table) Render() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	for i, width := range t.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	row := 1
	if t.Title != "" {
		if err := f.SetCellValue(sheet, cell(1, row), t.Title); err != nil {
			return nil, err
		}
		row += 2
	}

	if len(t.Header) > 0 {
		header := make([]any, len(t.Header))
		for i, h := range t.Header {
			header[i] = h
		}
		if err := f.SetSheetRow(sheet, cell(1, row), &header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell(1, row), cell(len(t.Header), row), headerStyle); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
		row++
	}

	for _, values := range t.Rows {
		values := values
		if err := f.SetSheetRow(sheet, cell(1, row), &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if len(t.Summary) > 0 {
		row++
		for _, values := range t.Summary {
			values := values
			if err := f.SetSheetRow(sheet, cell(1, row), &values); err != nil {
				return nil, fmt.Errorf("write summary row %d: %w", row, err)
			}
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
