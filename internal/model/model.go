package model

// Frequency is an SDMX-style frequency code.
type Frequency string

const (
	FreqAnnual    Frequency = "A"
	FreqQuarterly Frequency = "Q"
	FreqMonthly   Frequency = "M"
)

// CountryCode maps a raw country name to its ISO identity. Empty ISO2/ISO3
// means resolution failed; OfficialName then carries an "UNRESOLVED: <cause>"
// marker instead of a real name.
type CountryCode struct {
	RawName      string
	ISO2         string
	ISO3         string
	OfficialName string
}

func (c CountryCode) Resolved() bool {
	return c.ISO2 != ""
}

// Observation is one tidy time-series record. Value is nil when the upstream
// reported a missing, empty or non-numeric value; it is never coerced to zero.
// Period is the raw period label as delivered by the source; Year is the
// normalized numeric year where the source provides one, nil otherwise.
type Observation struct {
	EntityCode    string
	EntityName    string
	AreaType      string
	IndicatorCode string
	Freq          Frequency
	Period        string
	Year          *int
	Value         *float64
}

// Table is one adapter's result: a fixed column set plus zero or more rows.
// Adapters always populate Columns, including on empty results, so downstream
// consumers can rely on a stable shape.
type Table struct {
	Name    string
	Columns []string
	Rows    []Observation
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Cell returns the value of a named column for this row. Nullable columns
// yield nil so exporters can leave the cell blank.
func (o Observation) Cell(column string) any {
	switch column {
	case "freq":
		return string(o.Freq)
	case "ref_area", "refarea", "iso3":
		return o.EntityCode
	case "indicator":
		return o.IndicatorCode
	case "time_period":
		return o.Period
	case "country", "label":
		return o.EntityName
	case "type":
		return o.AreaType
	case "date", "year":
		if o.Year == nil {
			return nil
		}
		return *o.Year
	case "value":
		if o.Value == nil {
			return nil
		}
		return *o.Value
	default:
		return nil
	}
}

// RefArea is an IMF DataMapper reference area: a country, region or aggregate
// group.
type RefArea struct {
	Code  string
	Label string
	Type  string
}

const (
	RefAreaCountry = "country"
	RefAreaRegion  = "region"
	RefAreaGroup   = "group"
)
