package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSourcesRoster(t *testing.T) {
	sources, err := buildSources([]string{"US", "DE"}, []string{"USA", "DEU"}, 1990, 2030)
	require.NoError(t, err)

	names := make([]string, 0, len(sources))
	for _, source := range sources {
		names = append(names, source.Name())
	}

	assert.Equal(t, []string{
		"CPI M.PCPI_IX",
		"ER M.ENDA_XDC_USD_RATE",
		"IFS Q.NGDP_R_SA_XDC",
		"datamapper NGDP_RPCH",
		"datamapper PCPIPCH",
		"worldbank NY.GDP.MKTP.KD.ZG",
		"worldbank BN.CAB.XOKA.GD.ZS",
		"worldbank BX.KLT.DINV.WD.GD.ZS",
		"worldbank FI.RES.TOTL.MO",
		"worldbank GC.DOD.TOTL.GD.ZS",
	}, names)
}
