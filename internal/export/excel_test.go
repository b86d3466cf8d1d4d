package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrodata/internal/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildWorkbookSheets(t *testing.T) {
	countries := []model.CountryCode{
		{RawName: "France", ISO2: "FR", ISO3: "FRA", OfficialName: "France"},
		{RawName: "Nonexistent", OfficialName: "UNRESOLVED: no country match for \"Nonexistent\""},
	}
	tables := []model.Table{
		{
			Name:    "CPI PCPI_IX",
			Columns: []string{"freq", "ref_area", "indicator", "time_period", "value"},
			Rows: []model.Observation{
				{EntityCode: "FR", IndicatorCode: "PCPI_IX", Freq: model.FreqMonthly, Period: "2020-01", Value: floatPtr(104.2)},
				{EntityCode: "FR", IndicatorCode: "PCPI_IX", Freq: model.FreqMonthly, Period: "2020-02", Value: nil},
			},
		},
		{
			Name:    "NY.GDP.MKTP.KD.ZG",
			Columns: []string{"country", "iso3", "indicator", "date", "value"},
			Rows: []model.Observation{
				{EntityCode: "FRA", EntityName: "France", IndicatorCode: "NY.GDP.MKTP.KD.ZG", Period: "2020", Year: intPtr(2020), Value: floatPtr(-7.9)},
			},
		},
	}

	f, err := BuildWorkbook(countries, tables)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Countries", "CPI PCPI_IX", "NY.GDP.MKTP.KD.ZG"}, f.GetSheetList())

	// Country sheet: headers plus one row per input country, resolved or not.
	got, err := f.GetCellValue("Countries", "A1")
	require.NoError(t, err)
	assert.Equal(t, "raw_name", got)
	got, _ = f.GetCellValue("Countries", "C2")
	assert.Equal(t, "FRA", got)
	got, _ = f.GetCellValue("Countries", "D3")
	assert.Contains(t, got, "UNRESOLVED: ")

	// Data sheet: header row from the table's column set.
	got, _ = f.GetCellValue("CPI PCPI_IX", "A1")
	assert.Equal(t, "freq", got)
	got, _ = f.GetCellValue("CPI PCPI_IX", "E2")
	assert.Equal(t, "104.2", got)
	// Null values leave the cell blank rather than writing a zero.
	got, _ = f.GetCellValue("CPI PCPI_IX", "E3")
	assert.Equal(t, "", got)
	got, _ = f.GetCellValue("CPI PCPI_IX", "D3")
	assert.Equal(t, "2020-02", got)

	got, _ = f.GetCellValue("NY.GDP.MKTP.KD.ZG", "A2")
	assert.Equal(t, "France", got)
	got, _ = f.GetCellValue("NY.GDP.MKTP.KD.ZG", "D2")
	assert.Equal(t, "2020", got)
}

func TestBuildWorkbookSheetNameCollisions(t *testing.T) {
	columns := []string{"country", "iso3", "indicator", "date", "value"}
	longName := "International Financial Statistics Quarterly Real GDP"
	tables := []model.Table{
		{Name: longName, Columns: columns, Rows: []model.Observation{{EntityCode: "FRA", Period: "2020"}}},
		{Name: longName, Columns: columns, Rows: []model.Observation{{EntityCode: "DEU", Period: "2020"}}},
		{Name: "Countries", Columns: columns},
	}

	f, err := BuildWorkbook(nil, tables)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 4)
	seen := map[string]int{}
	for _, sheet := range sheets {
		seen[sheet]++
		assert.LessOrEqual(t, len(sheet), 31)
	}
	for sheet, count := range seen {
		assert.Equal(t, 1, count, "sheet %q duplicated", sheet)
	}

	// Both same-named tables keep their own rows.
	got, err := f.GetCellValue(sheets[1], "B2")
	require.NoError(t, err)
	assert.Equal(t, "FRA", got)
	got, err = f.GetCellValue(sheets[2], "B2")
	require.NoError(t, err)
	assert.Equal(t, "DEU", got)
}

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "CPI PCPI_IX", SanitizeSheetName("CPI PCPI_IX"))
	assert.Equal(t, "ab", SanitizeSheetName("a[/\\?*:]b"))
	assert.Equal(t, "Sheet", SanitizeSheetName("***"))
	long := SanitizeSheetName("International Financial Statistics Quarterly")
	assert.Len(t, long, 31)
}
