// Package countries resolves free-text country names to canonical ISO codes,
// using a manual override table first and fuzzy matching against the embedded
// ISO-3166 corpus otherwise.
package countries

import (
	"fmt"
	"strings"

	"macrodata/internal/model"
)

// ResolutionError reports that a raw name matched neither the override table
// nor the ISO corpus.
type ResolutionError struct {
	Name string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no country match for %q", e.Name)
}

// override is one manual mapping used where fuzzy matching is known to be
// wrong or ambiguous: disputed territories, non-ISO codes, parenthetical
// compound names and trailing-space artifacts from the curated list.
type override struct {
	iso2     string
	iso3     string
	official string
}

// Keys are whitespace-trimmed; lookups trim the input first.
var manualOverrides = map[string]override{
	"China (inc. Hong Kong SAR results)": {"CN", "CHN", "China"},
	"D.R. Congo":                         {"CD", "COD", "Congo, The Democratic Republic of the"},
	"Hong Kong SAR (inc. China results)": {"HK", "HKG", "Hong Kong"},
	"Montenegro, Rep. of":                {"ME", "MNE", "Montenegro"},
	"Timor-Leste, Dem. Rep. of":          {"TL", "TLS", "Timor-Leste"},
	"Taiwan Province of China":           {"TW", "TWN", "Taiwan, Province of China"},
	"West Bank & Gaza":                   {"PS", "PSE", "Palestine, State of"},
	"Korea":                              {"KR", "KOR", "Korea, Republic of"},
	// Kosovo has no ISO code; XK/XKX is the convention used by the World
	// Bank and others.
	"Kosovo":          {"XK", "XKX", "Kosovo"},
	"North Macedonia": {"MK", "MKD", "North Macedonia"},
}

// DefaultRawNames is the curated country set the system pulls data for. A few
// entries are deliberately non-standard (disputed or aggregate territories)
// and rely on the override table.
var DefaultRawNames = []string{
	"Afghanistan",
	"Albania",
	"Argentina",
	"Armenia",
	"Austria",
	"Azerbaijan",
	"Burundi",
	"Belgium",
	"Burkina Faso",
	"Bangladesh",
	"Bulgaria",
	"Bahrain",
	"Belarus",
	"Bolivia",
	"Brazil",
	"Canada",
	"Switzerland",
	"Chile",
	"China (inc. Hong Kong SAR results)",
	"Cameroon",
	"D.R. Congo",
	"Colombia",
	"Cyprus",
	"Czech Republic",
	"Germany",
	"Denmark",
	"Algeria",
	"Ecuador",
	"Egypt",
	"Spain",
	"Estonia",
	"Ethiopia",
	"Finland",
	"France",
	"United Kingdom",
	"Georgia",
	"Ghana",
	"Guinea",
	"Greece",
	"Guatemala",
	"Hong Kong SAR (inc. China results)",
	"Honduras",
	"Haiti",
	"Hungary",
	"Indonesia",
	"India",
	"Iran",
	"Iraq",
	"Israel",
	"Italy",
	"Jamaica",
	"Jordan",
	"Kazakhstan",
	"Kenya",
	"Kyrgyz Republic",
	"Cambodia",
	"Korea",
	"Kosovo",
	"Kuwait",
	"Lebanon",
	"Libya",
	"Sri Lanka",
	"Lithuania",
	"Latvia",
	"Morocco",
	"Moldova",
	"Madagascar",
	"Mexico",
	"North Macedonia ",
	"Mali",
	"Myanmar",
	"Montenegro, Rep. of",
	"Mauritania",
	"Malawi",
	"Malaysia",
	"Niger",
	"Nigeria",
	"Nicaragua",
	"Netherlands",
	"Nepal",
	"New Zealand",
	"Pakistan",
	"Panama",
	"Peru",
	"Philippines",
	"Papua New Guinea",
	"Poland",
	"Puerto Rico",
	"Portugal",
	"Paraguay",
	"Qatar",
	"Romania",
	"Russia",
	"Rwanda",
	"Saudi Arabia",
	"Sudan",
	"Senegal",
	"El Salvador",
	"Somalia",
	"Serbia",
	"Slovak Republic",
	"Slovenia",
	"Sweden",
	"Eswatini",
	"Syria",
	"Chad",
	"Togo",
	"Thailand",
	"Tajikistan",
	"Timor-Leste, Dem. Rep. of",
	"Tunisia",
	"Turkey",
	"Taiwan Province of China",
	"Tanzania",
	"Uganda",
	"Ukraine",
	"United States",
	"Uzbekistan",
	"Venezuela",
	"Vietnam",
	"West Bank & Gaza",
	"Yemen",
	"South Africa",
	"Zambia",
	"Zimbabwe",
}

// candidate is one precomputed matchable name: a country's ISO name or one of
// its aliases.
type candidate struct {
	index int    // into isoCountries
	norm  string // normalized full name
	head  string // normalized leading comma segment, "" when identical to norm
}

var candidates = buildCandidates()

func buildCandidates() []candidate {
	out := make([]candidate, 0, len(isoCountries)*2)
	for i, country := range isoCountries {
		names := append([]string{country.name}, country.aliases...)
		for _, name := range names {
			c := candidate{index: i, norm: normalizeName(name)}
			if headRaw, _, found := strings.Cut(name, ","); found {
				if head := normalizeName(headRaw); head != c.norm {
					c.head = head
				}
			}
			out = append(out, c)
		}
	}
	return out
}

// Resolve maps a raw country name to its ISO identity. Overrides always win;
// otherwise the single best fuzzy match against the ISO corpus is taken.
// Resolve is a pure function over static reference data.
func Resolve(rawName string) (model.CountryCode, error) {
	trimmed := strings.TrimSpace(rawName)

	if ov, ok := manualOverrides[trimmed]; ok {
		return model.CountryCode{
			RawName:      rawName,
			ISO2:         ov.iso2,
			ISO3:         ov.iso3,
			OfficialName: ov.official,
		}, nil
	}

	query := normalizeName(trimmed)
	bestScore := 0.0
	bestIndex := -1
	for _, c := range candidates {
		if s := score(query, c.norm, c.head); s > bestScore {
			bestScore = s
			bestIndex = c.index
		}
	}
	if bestIndex < 0 || bestScore < matchThreshold {
		return model.CountryCode{}, &ResolutionError{Name: trimmed}
	}

	match := isoCountries[bestIndex]
	return model.CountryCode{
		RawName:      rawName,
		ISO2:         match.alpha2,
		ISO3:         match.alpha3,
		OfficialName: match.name,
	}, nil
}

// BuildTable resolves an ordered list of raw names (the curated default when
// nil) into a reference table. A name that fails to resolve yields a sentinel
// row with empty ISO codes and an "UNRESOLVED: <cause>" marker instead of
// aborting the batch; output order matches input order and duplicates are
// kept.
func BuildTable(rawNames []string) []model.CountryCode {
	if rawNames == nil {
		rawNames = DefaultRawNames
	}

	table := make([]model.CountryCode, 0, len(rawNames))
	for _, name := range rawNames {
		code, err := Resolve(name)
		if err != nil {
			code = model.CountryCode{
				RawName:      name,
				OfficialName: "UNRESOLVED: " + err.Error(),
			}
		}
		table = append(table, code)
	}
	return table
}

// ISO2List returns the ISO2 codes of the resolved rows, input order kept.
func ISO2List(table []model.CountryCode) []string {
	out := make([]string, 0, len(table))
	for _, code := range table {
		if code.Resolved() {
			out = append(out, code.ISO2)
		}
	}
	return out
}

// ISO3List returns the ISO3 codes of the resolved rows, input order kept.
func ISO3List(table []model.CountryCode) []string {
	out := make([]string, 0, len(table))
	for _, code := range table {
		if code.Resolved() {
			out = append(out, code.ISO3)
		}
	}
	return out
}
