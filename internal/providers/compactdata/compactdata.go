// Package compactdata pulls time series from the IMF CompactData endpoint
// (SDMX JSON) and flattens them into tidy tables.
package compactdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"macrodata/internal/fetch"
	"macrodata/internal/model"
	"macrodata/internal/providers"
)

const (
	defaultBaseURL        = "https://dataservices.imf.org/REST/SDMX_JSON.svc"
	defaultTimeoutSeconds = 60
	defaultUserAgent      = "macrodata/0.1"
	defaultStartPeriod    = "1990"
	defaultEndPeriod      = "2030"
)

// TableColumns is the fixed column set of every CompactData result, empty
// results included.
var TableColumns = []string{"freq", "ref_area", "indicator", "time_period", "value"}

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	StartPeriod string
	EndPeriod   string
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
	if strings.TrimSpace(cfg.StartPeriod) == "" {
		cfg.StartPeriod = defaultStartPeriod
	}
	if strings.TrimSpace(cfg.EndPeriod) == "" {
		cfg.EndPeriod = defaultEndPeriod
	}

	return &Provider{
		config: cfg,
		client: fetch.NewClient(cfg.Timeout, cfg.UserAgent),
	}, nil
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:     getenv("IMF_BASE_URL", defaultBaseURL),
		Timeout:     time.Duration(getenvInt("IMF_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		UserAgent:   getenv("IMF_USER_AGENT", defaultUserAgent),
		StartPeriod: getenv("IMF_START_PERIOD", defaultStartPeriod),
		EndPeriod:   getenv("IMF_END_PERIOD", defaultEndPeriod),
	}
}

func (p *Provider) Name() string {
	return "imf-compactdata"
}

// SeriesRequest identifies one CompactData pull.
type SeriesRequest struct {
	Dataset     string
	Freq        model.Frequency
	Indicator   string
	ISO2        []string
	StartPeriod string
	EndPeriod   string
}

// SeriesKey builds the `{freq}.{AREA+AREA+...}.{indicator}` request key. Area
// codes are upper-cased, deduplicated and sorted, so any permutation of the
// same area set yields an identical key.
func SeriesKey(freq model.Frequency, indicator string, iso2List []string) (string, error) {
	seen := make(map[string]struct{}, len(iso2List))
	areas := make([]string, 0, len(iso2List))
	for _, code := range iso2List {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		areas = append(areas, code)
	}
	if len(areas) == 0 {
		return "", fmt.Errorf("%w: empty iso2 list", providers.ErrInvalidRequest)
	}
	sort.Strings(areas)

	return fmt.Sprintf("%s.%s.%s", freq, strings.Join(areas, "+"), indicator), nil
}

// FetchSeries pulls one indicator for a set of countries and returns a tidy
// table with the fixed CompactData column set.
func (p *Provider) FetchSeries(ctx context.Context, req SeriesRequest) (model.Table, error) {
	if strings.TrimSpace(req.Dataset) == "" {
		return model.Table{}, fmt.Errorf("%w: dataset is required", providers.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Indicator) == "" {
		return model.Table{}, fmt.Errorf("%w: indicator is required", providers.ErrInvalidRequest)
	}
	key, err := SeriesKey(req.Freq, req.Indicator, req.ISO2)
	if err != nil {
		return model.Table{}, err
	}

	endpoint := strings.TrimRight(p.config.BaseURL, "/") + "/CompactData/" + url.PathEscape(req.Dataset) + "/" + key

	params := url.Values{}
	params.Set("startPeriod", firstNonEmpty(req.StartPeriod, p.config.StartPeriod))
	params.Set("endPeriod", firstNonEmpty(req.EndPeriod, p.config.EndPeriod))

	var payload compactPayload
	if _, err := p.client.GetJSON(ctx, endpoint, params, &payload); err != nil {
		return model.Table{}, err
	}

	table := model.Table{
		Name:    fmt.Sprintf("%s %s", req.Dataset, req.Indicator),
		Columns: append([]string(nil), TableColumns...),
	}
	for _, series := range payload.CompactData.DataSet.Series {
		for _, obs := range series.Obs {
			table.Rows = append(table.Rows, model.Observation{
				EntityCode:    series.RefArea,
				IndicatorCode: series.Indicator,
				Freq:          model.Frequency(series.Freq),
				Period:        obs.TimePeriod,
				Value:         parseNumericOrNull(obs.Value),
			})
		}
	}
	return table, nil
}

type compactPayload struct {
	CompactData struct {
		DataSet struct {
			Series seriesList `json:"Series"`
		} `json:"DataSet"`
	} `json:"CompactData"`
}

type compactSeries struct {
	Freq      string  `json:"@FREQ"`
	RefArea   string  `json:"@REF_AREA"`
	Indicator string  `json:"@INDICATOR"`
	Obs       obsList `json:"Obs"`
}

type compactObs struct {
	TimePeriod string          `json:"@TIME_PERIOD"`
	Value      json.RawMessage `json:"@OBS_VALUE"`
}

// seriesList and obsList absorb the upstream's single-vs-list ambiguity: the
// node is an object when one entity matched and an array otherwise. Both
// shapes are normalized to a list at the parse boundary.
type seriesList []compactSeries

func (l *seriesList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var many []compactSeries
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}
	var one compactSeries
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*l = seriesList{one}
	return nil
}

type obsList []compactObs

func (l *obsList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var many []compactObs
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}
	var one compactObs
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*l = obsList{one}
	return nil
}

// parseNumericOrNull degrades a missing, empty or non-numeric value field to
// nil. Upstream data quality is not assumed clean; a dirty value keeps its row
// with a null value rather than failing the pull.
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

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
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
