// Package worldbank pulls indicator series from the World Bank Indicators API,
// accumulating rows across its paginated [metadata, data] responses.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"macrodata/internal/fetch"
	"macrodata/internal/model"
	"macrodata/internal/providers"
)

const (
	defaultBaseURL        = "https://api.worldbank.org/v2"
	defaultTimeoutSeconds = 60
	defaultUserAgent      = "macrodata/0.1"
	defaultPerPage        = 20000

	// "all countries" wildcard in the country path segment
	allCountries = "all"
)

// TableColumns is the fixed column set of every World Bank result.
var TableColumns = []string{"country", "iso3", "indicator", "date", "value"}

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	PerPage   int
}

type Provider struct {
	config Config
	client *fetch.Client
}

func New() (*Provider, error) {
	return NewWithConfig(ConfigFromEnv())
}

func NewWithConfig(cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeoutSeconds * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = defaultPerPage
	}

	return &Provider{
		config: cfg,
		client: fetch.NewClient(cfg.Timeout, cfg.UserAgent),
	}, nil
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:   getenv("WB_BASE_URL", defaultBaseURL),
		Timeout:   time.Duration(getenvInt("WB_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		UserAgent: getenv("WB_USER_AGENT", defaultUserAgent),
		PerPage:   getenvInt("WB_PER_PAGE", defaultPerPage),
	}
}

func (p *Provider) Name() string {
	return "worldbank"
}

// FetchIndicator pulls one indicator for a list of ISO3 codes (all countries
// when the list is empty), looping over pages until the reported page count is
// reached or a page comes back without a data array.
func (p *Provider) FetchIndicator(ctx context.Context, indicator string, iso3List []string, startYear, endYear int) (model.Table, error) {
	indicator = strings.TrimSpace(indicator)
	if indicator == "" {
		return model.Table{}, fmt.Errorf("%w: indicator is required", providers.ErrInvalidRequest)
	}

	endpoint := strings.TrimRight(p.config.BaseURL, "/") +
		"/country/" + url.PathEscape(countrySegment(iso3List)) +
		"/indicator/" + url.PathEscape(indicator)

	params := url.Values{}
	params.Set("format", "json")
	params.Set("per_page", strconv.Itoa(p.config.PerPage))
	if date := dateParam(startYear, endYear); date != "" {
		params.Set("date", date)
	}

	table := model.Table{
		Name:    indicator,
		Columns: append([]string(nil), TableColumns...),
	}

	for page := 1; ; page++ {
		params.Set("page", strconv.Itoa(page))

		var payload wbPage
		if _, err := p.client.GetJSON(ctx, endpoint, params, &payload); err != nil {
			return model.Table{}, err
		}
		// A null or missing data array is a clean end-of-data signal.
		if payload.Rows == nil {
			break
		}

		for _, row := range payload.Rows {
			table.Rows = append(table.Rows, model.Observation{
				EntityCode:    row.ISO3,
				EntityName:    row.Country.Value,
				IndicatorCode: row.Indicator.ID,
				Freq:          model.FreqAnnual,
				Period:        row.Date,
				Year:          parseYearOrNull(row.Date),
				Value:         parseNumericOrNull(row.Value),
			})
		}

		if page >= payload.Meta.Pages.orDefault(1) {
			break
		}
	}

	return table, nil
}

// countrySegment joins the ISO3 codes with semicolons, or falls back to the
// "all" wildcard.
func countrySegment(iso3List []string) string {
	codes := make([]string, 0, len(iso3List))
	for _, code := range iso3List {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return allCountries
	}
	return strings.Join(codes, ";")
}

// dateParam renders the date restriction as "{start}:{end}", "{start}:" or
// ":{end}" depending on which bounds are supplied.
func dateParam(startYear, endYear int) string {
	switch {
	case startYear > 0 && endYear > 0:
		return fmt.Sprintf("%d:%d", startYear, endYear)
	case startYear > 0:
		return fmt.Sprintf("%d:", startYear)
	case endYear > 0:
		return fmt.Sprintf(":%d", endYear)
	default:
		return ""
	}
}

// wbPage is one [metadata, data] response pair. Responses shorter than two
// elements, or with a null data element, leave Rows nil.
type wbPage struct {
	Meta wbMeta
	Rows []wbRow
}

func (pg *wbPage) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) >= 1 && !isNull(parts[0]) {
		if err := json.Unmarshal(parts[0], &pg.Meta); err != nil {
			return err
		}
	}
	if len(parts) >= 2 && !isNull(parts[1]) {
		if err := json.Unmarshal(parts[1], &pg.Rows); err != nil {
			return err
		}
	}
	return nil
}

type wbMeta struct {
	Page    flexInt `json:"page"`
	Pages   flexInt `json:"pages"`
	PerPage flexInt `json:"per_page"`
	Total   flexInt `json:"total"`
}

type wbRow struct {
	Indicator struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"indicator"`
	Country struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"country"`
	ISO3  string          `json:"countryiso3code"`
	Date  string          `json:"date"`
	Value json.RawMessage `json:"value"`
}

// flexInt tolerates the API's habit of encoding counters as either numbers or
// strings.
type flexInt struct {
	value int
	valid bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	f.value = parsed
	f.valid = true
	return nil
}

func (f flexInt) orDefault(fallback int) int {
	if !f.valid {
		return fallback
	}
	return f.value
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func parseNumericOrNull(raw json.RawMessage) *float64 {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseYearOrNull(value string) *int {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &year
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
