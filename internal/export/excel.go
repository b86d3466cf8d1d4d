// Package export writes pulled tables into a multi-sheet Excel workbook.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"macrodata/internal/model"
)

const countrySheet = "Countries"

var countryHeaders = []string{"raw_name", "iso2", "iso3", "official_name"}

// BuildWorkbook assembles the workbook in memory: the country reference table
// on the first sheet, then one sheet per data table in the given order.
func BuildWorkbook(countries []model.CountryCode, tables []model.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// Reuse the default sheet for the country table instead of leaving an
	// empty Sheet1 behind.
	if err := f.SetSheetName("Sheet1", countrySheet); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if err := writeHeaders(f, countrySheet, countryHeaders, headerStyle); err != nil {
		return nil, err
	}
	for rowIdx, country := range countries {
		row := rowIdx + 2
		f.SetCellValue(countrySheet, fmt.Sprintf("A%d", row), country.RawName)
		f.SetCellValue(countrySheet, fmt.Sprintf("B%d", row), country.ISO2)
		f.SetCellValue(countrySheet, fmt.Sprintf("C%d", row), country.ISO3)
		f.SetCellValue(countrySheet, fmt.Sprintf("D%d", row), country.OfficialName)
	}

	used := map[string]bool{countrySheet: true}
	for _, table := range tables {
		sheetName := uniqueSheetName(SanitizeSheetName(table.Name), used)
		used[sheetName] = true
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
		}
		if err := writeHeaders(f, sheetName, table.Columns, headerStyle); err != nil {
			return nil, err
		}
		for rowIdx, observation := range table.Rows {
			row := rowIdx + 2
			for colIdx, column := range table.Columns {
				value := observation.Cell(column)
				if value == nil {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
				f.SetCellValue(sheetName, cell, value)
			}
		}
	}

	if index, err := f.GetSheetIndex(countrySheet); err == nil {
		f.SetActiveSheet(index)
	}

	return f, nil
}

// WriteWorkbook builds the workbook and saves it to path.
func WriteWorkbook(path string, countries []model.CountryCode, tables []model.Table) error {
	f, err := BuildWorkbook(countries, tables)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// SanitizeSheetName strips characters Excel rejects in sheet names and caps
// the result at the 31-character limit.
func SanitizeSheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = "Sheet"
	}
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}
	return cleaned
}

// uniqueSheetName suffixes a taken name with a counter, trimming the base so
// the result stays within the 31-character sheet-name limit. Sanitized names
// from different tables can otherwise collide and silently share one sheet.
func uniqueSheetName(name string, used map[string]bool) string {
	if !used[name] {
		return name
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf(" %d", i)
		base := name
		if len(base)+len(suffix) > 31 {
			base = base[:31-len(suffix)]
		}
		candidate := base + suffix
		if !used[candidate] {
			return candidate
		}
	}
}

func writeHeaders(f *excelize.File, sheetName string, headers []string, style int) error {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, style)
	}
	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}
	return nil
}
