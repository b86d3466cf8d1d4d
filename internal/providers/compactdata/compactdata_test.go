package compactdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrodata/internal/fetch"
	"macrodata/internal/model"
	"macrodata/internal/providers"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*Provider, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewWithConfig(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return p, srv
}

func TestSeriesKeyNormalization(t *testing.T) {
	key, err := SeriesKey(model.FreqMonthly, "PCPI_IX", []string{"us", "DE", " US ", "fr"})
	require.NoError(t, err)
	assert.Equal(t, "M.DE+FR+US.PCPI_IX", key)
}

func TestSeriesKeyPermutationStable(t *testing.T) {
	a, err := SeriesKey(model.FreqQuarterly, "NGDP_R_SA_XDC", []string{"JP", "BR", "KR"})
	require.NoError(t, err)
	b, err := SeriesKey(model.FreqQuarterly, "NGDP_R_SA_XDC", []string{"KR", "JP", "BR"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSeriesKeyEmptyAreas(t *testing.T) {
	_, err := SeriesKey(model.FreqMonthly, "PCPI_IX", []string{" ", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, providers.ErrInvalidRequest)
}

func TestFetchSeriesSingleAndListShapesAgree(t *testing.T) {
	// One country, one observation: upstream collapses both levels to bare
	// objects.
	single := `{"CompactData":{"DataSet":{"Series":
		{"@FREQ":"M","@REF_AREA":"US","@INDICATOR":"PCPI_IX",
		 "Obs":{"@TIME_PERIOD":"2020-01","@OBS_VALUE":"105.5"}}}}}`
	list := `{"CompactData":{"DataSet":{"Series":
		[{"@FREQ":"M","@REF_AREA":"US","@INDICATOR":"PCPI_IX",
		  "Obs":[{"@TIME_PERIOD":"2020-01","@OBS_VALUE":"105.5"}]}]}}}`

	fetchTable := func(body string) model.Table {
		p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		table, err := p.FetchSeries(context.Background(), SeriesRequest{
			Dataset: "CPI", Freq: model.FreqMonthly, Indicator: "PCPI_IX", ISO2: []string{"US"},
		})
		require.NoError(t, err)
		return table
	}

	fromSingle := fetchTable(single)
	fromList := fetchTable(list)
	assert.Equal(t, fromList.Rows, fromSingle.Rows)

	require.Len(t, fromSingle.Rows, 1)
	row := fromSingle.Rows[0]
	assert.Equal(t, "US", row.EntityCode)
	assert.Equal(t, "PCPI_IX", row.IndicatorCode)
	assert.Equal(t, model.FreqMonthly, row.Freq)
	assert.Equal(t, "2020-01", row.Period)
	require.NotNil(t, row.Value)
	assert.Equal(t, 105.5, *row.Value)
}

func TestFetchSeriesMissingSeriesKeepsColumns(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"CompactData":{"DataSet":{}}}`))
	})

	table, err := p.FetchSeries(context.Background(), SeriesRequest{
		Dataset: "CPI", Freq: model.FreqMonthly, Indicator: "PCPI_IX", ISO2: []string{"US"},
	})
	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.Equal(t, TableColumns, table.Columns)
}

func TestFetchSeriesNullValues(t *testing.T) {
	body := `{"CompactData":{"DataSet":{"Series":
		{"@FREQ":"M","@REF_AREA":"US","@INDICATOR":"PCPI_IX","Obs":[
			{"@TIME_PERIOD":"2020-01","@OBS_VALUE":""},
			{"@TIME_PERIOD":"2020-02","@OBS_VALUE":"n/a"},
			{"@TIME_PERIOD":"2020-03"},
			{"@TIME_PERIOD":"2020-04","@OBS_VALUE":"101.25"}
		]}}}}`
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	table, err := p.FetchSeries(context.Background(), SeriesRequest{
		Dataset: "CPI", Freq: model.FreqMonthly, Indicator: "PCPI_IX", ISO2: []string{"US"},
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)

	assert.Nil(t, table.Rows[0].Value)
	assert.Nil(t, table.Rows[1].Value)
	assert.Nil(t, table.Rows[2].Value)
	require.NotNil(t, table.Rows[3].Value)
	assert.Equal(t, 101.25, *table.Rows[3].Value)
}

func TestFetchSeriesRequestShape(t *testing.T) {
	var gotPath, gotStart, gotEnd string
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStart = r.URL.Query().Get("startPeriod")
		gotEnd = r.URL.Query().Get("endPeriod")
		w.Write([]byte(`{"CompactData":{"DataSet":{}}}`))
	})

	_, err := p.FetchSeries(context.Background(), SeriesRequest{
		Dataset: "CPI", Freq: model.FreqMonthly, Indicator: "PCPI_IX",
		ISO2: []string{"de", "US"}, StartPeriod: "2015-01", EndPeriod: "2020-12",
	})
	require.NoError(t, err)

	assert.Equal(t, "/CompactData/CPI/M.DE+US.PCPI_IX", gotPath)
	assert.Equal(t, "2015-01", gotStart)
	assert.Equal(t, "2020-12", gotEnd)
}

func TestFetchSeriesTransportError(t *testing.T) {
	p, srv := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusInternalServerError)
	})

	_, err := p.FetchSeries(context.Background(), SeriesRequest{
		Dataset: "CPI", Freq: model.FreqMonthly, Indicator: "PCPI_IX", ISO2: []string{"US"},
	})
	require.Error(t, err)

	var transportErr *fetch.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Contains(t, transportErr.URL, srv.URL)
	assert.Contains(t, transportErr.Body, "service unavailable")
}
