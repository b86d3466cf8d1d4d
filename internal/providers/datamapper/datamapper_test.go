package datamapper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrodata/internal/model"
)

const refAreaBody = `{"countries":{"USA":{"label":"United States"},"CAN":{"label":"Canada"}}}`

// newTestProvider routes reference-area endpoints to canned metadata and
// everything else to the given indicator body.
func newTestProvider(t *testing.T, cache *RefAreaCache, indicatorBody string, hits *int64) *Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/countries":
			if hits != nil {
				atomic.AddInt64(hits, 1)
			}
			w.Write([]byte(refAreaBody))
		case "/regions":
			w.Write([]byte(`{"regions":{}}`))
		case "/groups":
			w.Write([]byte(`{"groups":{}}`))
		default:
			w.Write([]byte(indicatorBody))
		}
	}))
	t.Cleanup(srv.Close)

	p, err := NewWithConfig(Config{BaseURL: srv.URL}, cache)
	require.NoError(t, err)
	return p
}

func TestFetchIndicatorJoinsLabels(t *testing.T) {
	body := `{"values":{"NGDP_RPCH":{
		"USA":{"2020":-2.8,"2021":5.9},
		"CAN":{"2020":-5.0},
		"ZZZ":{"2020":1.0}
	}}}`
	p := newTestProvider(t, nil, body, nil)

	table, err := p.FetchIndicator(context.Background(), "NGDP_RPCH", nil, 2020, 2021)
	require.NoError(t, err)
	assert.Equal(t, TableColumns, table.Columns)
	require.Len(t, table.Rows, 4)

	// Rows come out sorted by area code, then year.
	assert.Equal(t, "CAN", table.Rows[0].EntityCode)
	assert.Equal(t, "Canada", table.Rows[0].EntityName)
	assert.Equal(t, model.RefAreaCountry, table.Rows[0].AreaType)

	assert.Equal(t, "USA", table.Rows[1].EntityCode)
	assert.Equal(t, "2020", table.Rows[1].Period)
	require.NotNil(t, table.Rows[1].Year)
	assert.Equal(t, 2020, *table.Rows[1].Year)
	require.NotNil(t, table.Rows[1].Value)
	assert.Equal(t, -2.8, *table.Rows[1].Value)

	assert.Equal(t, "USA", table.Rows[2].EntityCode)
	assert.Equal(t, "2021", table.Rows[2].Period)

	// Unknown area keeps its row with empty label and type.
	assert.Equal(t, "ZZZ", table.Rows[3].EntityCode)
	assert.Empty(t, table.Rows[3].EntityName)
	assert.Empty(t, table.Rows[3].AreaType)
}

func TestFetchIndicatorKeyFallback(t *testing.T) {
	// Response keyed under a drifted name instead of the requested one.
	body := `{"values":{"NGDP_RPCH_ALT":{"USA":{"2020":1.5}}}}`
	p := newTestProvider(t, nil, body, nil)

	table, err := p.FetchIndicator(context.Background(), "NGDP_RPCH", nil, 2020, 2020)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	// The row keeps the requested indicator code.
	assert.Equal(t, "NGDP_RPCH", table.Rows[0].IndicatorCode)
	require.NotNil(t, table.Rows[0].Value)
	assert.Equal(t, 1.5, *table.Rows[0].Value)
}

func TestFetchIndicatorEmptyValues(t *testing.T) {
	p := newTestProvider(t, nil, `{"values":{}}`, nil)

	table, err := p.FetchIndicator(context.Background(), "NGDP_RPCH", nil, 2020, 2020)
	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.Equal(t, TableColumns, table.Columns)
}

func TestFetchIndicatorNullAndDirtyValues(t *testing.T) {
	body := `{"values":{"NGDP_RPCH":{"USA":{"2019":null,"2020":"n/a","2021":"3.25"}}}}`
	p := newTestProvider(t, nil, body, nil)

	table, err := p.FetchIndicator(context.Background(), "NGDP_RPCH", nil, 2019, 2021)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Nil(t, table.Rows[0].Value)
	assert.Nil(t, table.Rows[1].Value)
	require.NotNil(t, table.Rows[2].Value)
	assert.Equal(t, 3.25, *table.Rows[2].Value)
}

func TestFetchIndicatorSkipsNonObjectRefAreaEntries(t *testing.T) {
	// Upstream sometimes mixes metadata strings into the ref-area map; those
	// entries are dropped, the rest of the pull survives.
	body := `{"values":{"NGDP_RPCH":{
		"USA":{"2020":-2.8},
		"api_note":"see documentation",
		"CAN":{"2020":-5.0}
	}}}`
	p := newTestProvider(t, nil, body, nil)

	table, err := p.FetchIndicator(context.Background(), "NGDP_RPCH", nil, 2020, 2020)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "CAN", table.Rows[0].EntityCode)
	assert.Equal(t, "USA", table.Rows[1].EntityCode)
}

func TestIndicatorsCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/indicators", r.URL.Path)
		w.Write([]byte(`{"indicators":{
			"PCPIPCH":{"label":"Inflation rate, average consumer prices"},
			"NGDP_RPCH":{"label":"Real GDP growth"},
			"LUR":null
		}}`))
	}))
	t.Cleanup(srv.Close)

	p, err := NewWithConfig(Config{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	catalog, err := p.Indicators(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Indicator{
		{Code: "LUR"},
		{Code: "NGDP_RPCH", Label: "Real GDP growth"},
		{Code: "PCPIPCH", Label: "Inflation rate, average consumer prices"},
	}, catalog)
}

func TestRefAreaCachePopulatesOnce(t *testing.T) {
	var hits int64
	cache := NewRefAreaCache()
	p := newTestProvider(t, cache, `{"values":{"NGDP_RPCH":{"USA":{"2020":1.0}}}}`, &hits)

	_, err := p.FetchIndicator(context.Background(), "NGDP_RPCH", nil, 2020, 2020)
	require.NoError(t, err)
	_, err = p.FetchIndicator(context.Background(), "NGDP_RPCH", nil, 2020, 2020)
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))

	areas, err := p.RefAreas(context.Background())
	require.NoError(t, err)
	assert.Len(t, areas, 2)
	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
}

func TestPeriodsParam(t *testing.T) {
	p, err := NewWithConfig(Config{MinYear: 1998}, nil)
	require.NoError(t, err)

	assert.Equal(t, "", p.periodsParam(0, 0))
	assert.Equal(t, "2019,2020,2021", p.periodsParam(2019, 2021))
	assert.Equal(t, "2020", p.periodsParam(2020, 0))
	// Only an end year enumerates from the configured lower bound.
	assert.Equal(t, "1998,1999,2000", p.periodsParam(0, 2000))
	// Reversed bounds are swapped, not rejected.
	assert.Equal(t, "2019,2020", p.periodsParam(2020, 2019))
}

func TestFetchIndicatorRequestShape(t *testing.T) {
	var gotPath, gotPeriods string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/countries", "/regions", "/groups":
			w.Write([]byte(`{}`))
		default:
			gotPath = r.URL.Path
			gotPeriods = r.URL.Query().Get("periods")
			w.Write([]byte(`{"values":{}}`))
		}
	}))
	t.Cleanup(srv.Close)

	p, err := NewWithConfig(Config{BaseURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = p.FetchIndicator(context.Background(), "PCPIPCH", []string{"USA", "CAN"}, 2020, 2022)
	require.NoError(t, err)
	assert.Equal(t, "/PCPIPCH/USA/CAN", gotPath)
	assert.Equal(t, "2020,2021,2022", gotPeriods)
}
