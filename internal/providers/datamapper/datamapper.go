// Package datamapper pulls annual indicator values from the IMF DataMapper
// endpoint and joins them against its reference-area metadata.
package datamapper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"macrodata/internal/fetch"
	"macrodata/internal/model"
	"macrodata/internal/providers"
)

const (
	defaultBaseURL        = "https://www.imf.org/external/datamapper/api/v1"
	defaultTimeoutSeconds = 60
	defaultUserAgent      = "macrodata/0.1"

	// Lower bound used when only an end year is given. Upstream does not
	// document a default range; 1900 is a sentinel carried over from the
	// previous tooling, overridable via Config.MinYear.
	defaultMinYear = 1900
)

// TableColumns is the fixed column set of every DataMapper result.
var TableColumns = []string{"indicator", "refarea", "year", "value", "label", "type"}

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	MinYear   int
}

// RefAreaCache holds the reference-area metadata (countries, regions, groups)
// for a process lifetime. It is populated at most once under its mutex and
// read-only afterwards, so concurrent first use cannot trigger duplicate
// fetches.
type RefAreaCache struct {
	mu     sync.Mutex
	loaded bool
	areas  map[string]model.RefArea
}

func NewRefAreaCache() *RefAreaCache {
	return &RefAreaCache{}
}

type Provider struct {
	config Config
	client *fetch.Client
	cache  *RefAreaCache
}

func New() (*Provider, error) {
	return NewWithConfig(ConfigFromEnv(), nil)
}

// NewWithConfig builds a provider around an injected cache. A nil cache gets
// a fresh one, private to this provider.
func NewWithConfig(cfg Config, cache *RefAreaCache) (*Provider, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeoutSeconds * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MinYear <= 0 {
		cfg.MinYear = defaultMinYear
	}
	if cache == nil {
		cache = NewRefAreaCache()
	}

	return &Provider{
		config: cfg,
		client: fetch.NewClient(cfg.Timeout, cfg.UserAgent),
		cache:  cache,
	}, nil
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:   getenv("IMF_DM_BASE_URL", defaultBaseURL),
		Timeout:   time.Duration(getenvInt("IMF_DM_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		UserAgent: getenv("IMF_DM_USER_AGENT", defaultUserAgent),
		MinYear:   getenvInt("IMF_DM_MIN_YEAR", defaultMinYear),
	}
}

func (p *Provider) Name() string {
	return "imf-datamapper"
}

// FetchIndicator pulls one annual indicator for a set of reference areas
// (all areas when the list is empty) and attaches labels and area types from
// the cached reference-area table. Unmatched codes keep empty label/type.
func (p *Provider) FetchIndicator(ctx context.Context, indicator string, refAreas []string, startYear, endYear int) (model.Table, error) {
	indicator = strings.TrimSpace(indicator)
	if indicator == "" {
		return model.Table{}, fmt.Errorf("%w: indicator is required", providers.ErrInvalidRequest)
	}

	parts := []string{url.PathEscape(indicator)}
	for _, area := range refAreas {
		area = strings.TrimSpace(area)
		if area == "" {
			continue
		}
		parts = append(parts, url.PathEscape(area))
	}
	endpoint := strings.TrimRight(p.config.BaseURL, "/") + "/" + strings.Join(parts, "/")

	params := url.Values{}
	if periods := p.periodsParam(startYear, endYear); periods != "" {
		params.Set("periods", periods)
	}

	var payload dmPayload
	if _, err := p.client.GetJSON(ctx, endpoint, params, &payload); err != nil {
		return model.Table{}, err
	}

	table := model.Table{
		Name:    indicator,
		Columns: append([]string(nil), TableColumns...),
	}
	series, ok := payload.Values[indicator]
	if !ok {
		// Fallback for upstream naming drift: when the requested indicator
		// key is absent, use the (lexicographically first) present key.
		keys := make([]string, 0, len(payload.Values))
		for key := range payload.Values {
			keys = append(keys, key)
		}
		if len(keys) == 0 {
			return table, nil
		}
		sort.Strings(keys)
		series = payload.Values[keys[0]]
	}

	areas, err := p.cache.ensure(ctx, p)
	if err != nil {
		return model.Table{}, err
	}

	refCodes := make([]string, 0, len(series))
	for code := range series {
		refCodes = append(refCodes, code)
	}
	sort.Strings(refCodes)

	for _, code := range refCodes {
		var byYear map[string]json.RawMessage
		if err := json.Unmarshal(series[code], &byYear); err != nil {
			continue
		}
		years := make([]string, 0, len(byYear))
		for year := range byYear {
			years = append(years, year)
		}
		sort.Strings(years)

		for _, year := range years {
			obs := model.Observation{
				EntityCode:    code,
				IndicatorCode: indicator,
				Freq:          model.FreqAnnual,
				Period:        year,
				Year:          parseYearOrNull(year),
				Value:         parseNumericOrNull(byYear[year]),
			}
			if area, ok := areas[code]; ok {
				obs.EntityName = area.Label
				obs.AreaType = area.Type
			}
			table.Rows = append(table.Rows, obs)
		}
	}
	return table, nil
}

// RefAreas returns the cached reference-area table, fetching it on first use.
func (p *Provider) RefAreas(ctx context.Context) ([]model.RefArea, error) {
	areas, err := p.cache.ensure(ctx, p)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(areas))
	for code := range areas {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]model.RefArea, 0, len(codes))
	for _, code := range codes {
		out = append(out, areas[code])
	}
	return out, nil
}

// Indicator is one entry of the DataMapper indicator catalog.
type Indicator struct {
	Code  string
	Label string
}

// Indicators fetches the indicator catalog, sorted by code.
func (p *Provider) Indicators(ctx context.Context) ([]Indicator, error) {
	uri := strings.TrimRight(p.config.BaseURL, "/") + "/indicators"

	var payload struct {
		Indicators map[string]*struct {
			Label string `json:"label"`
		} `json:"indicators"`
	}
	if _, err := p.client.GetJSON(ctx, uri, nil, &payload); err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(payload.Indicators))
	for code := range payload.Indicators {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]Indicator, 0, len(codes))
	for _, code := range codes {
		ind := Indicator{Code: code}
		if entry := payload.Indicators[code]; entry != nil {
			ind.Label = entry.Label
		}
		out = append(out, ind)
	}
	return out, nil
}

// periodsParam enumerates the requested years as a comma-separated list.
// Only-end-year degrades to a MinYear lower bound; only-start-year degrades
// to that single year.
func (p *Provider) periodsParam(startYear, endYear int) string {
	if startYear <= 0 && endYear <= 0 {
		return ""
	}
	if startYear <= 0 {
		startYear = p.config.MinYear
	}
	if endYear <= 0 {
		endYear = startYear
	}
	if startYear > endYear {
		startYear, endYear = endYear, startYear
	}

	years := make([]string, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		years = append(years, strconv.Itoa(year))
	}
	return strings.Join(years, ",")
}

func (c *RefAreaCache) ensure(ctx context.Context, p *Provider) (map[string]model.RefArea, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.areas, nil
	}

	areas := make(map[string]model.RefArea)
	endpoints := []struct {
		endpoint string
		areaType string
	}{
		{"countries", model.RefAreaCountry},
		{"regions", model.RefAreaRegion},
		{"groups", model.RefAreaGroup},
	}
	for _, e := range endpoints {
		entries, err := p.fetchRefAreas(ctx, e.endpoint)
		if err != nil {
			return nil, err
		}
		for code, entry := range entries {
			area := model.RefArea{Code: code, Type: e.areaType}
			if entry != nil {
				area.Label = entry.Label
			}
			areas[code] = area
		}
	}

	c.areas = areas
	c.loaded = true
	return areas, nil
}

type refAreaEntry struct {
	Label string `json:"label"`
}

func (p *Provider) fetchRefAreas(ctx context.Context, endpoint string) (map[string]*refAreaEntry, error) {
	uri := strings.TrimRight(p.config.BaseURL, "/") + "/" + endpoint

	var payload struct {
		Countries map[string]*refAreaEntry `json:"countries"`
		Regions   map[string]*refAreaEntry `json:"regions"`
		Groups    map[string]*refAreaEntry `json:"groups"`
	}
	if _, err := p.client.GetJSON(ctx, uri, nil, &payload); err != nil {
		return nil, err
	}

	switch endpoint {
	case "countries":
		return payload.Countries, nil
	case "regions":
		return payload.Regions, nil
	default:
		return payload.Groups, nil
	}
}

type dmPayload struct {
	// values[indicator][refarea] -> year-keyed object. The ref-area level is
	// kept raw: upstream occasionally mixes non-object entries into the map,
	// and those are skipped rather than failing the pull.
	Values map[string]map[string]json.RawMessage `json:"values"`
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
