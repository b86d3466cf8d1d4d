package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"macrodata/internal/countries"
	"macrodata/internal/export"
	"macrodata/internal/model"
	"macrodata/internal/providers"
	"macrodata/internal/providers/compactdata"
	"macrodata/internal/providers/datamapper"
	"macrodata/internal/providers/worldbank"
	"macrodata/internal/store"
	"macrodata/internal/store/sqlite"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		run(os.Args[2:])
	case "countries":
		runCountries(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func run(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	namesPath := fs.String("names", "", "path to a country-name list file (empty = built-in list)")
	dbPath := fs.String("db", "", "sqlite database path (empty disables persistence)")
	outPath := fs.String("out", "macro_data.xlsx", "output workbook path")
	startYear := fs.Int("start", 1990, "first year to pull")
	endYear := fs.Int("end", 2030, "last year to pull")
	verbose := fs.Bool("verbose", false, "print each pulled table summary")
	fs.Parse(args)

	if err := runFetch(*namesPath, *dbPath, *outPath, *startYear, *endYear, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "macrofetch run failed:", err)
		os.Exit(1)
	}
}

func runCountries(args []string) {
	fs := flag.NewFlagSet("countries", flag.ExitOnError)
	namesPath := fs.String("names", "", "path to a country-name list file (empty = built-in list)")
	fs.Parse(args)

	names, err := loadNames(*namesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "macrofetch countries failed:", err)
		os.Exit(1)
	}

	for _, country := range countries.BuildTable(names) {
		fmt.Printf("%s\t%s\t%s\t%s\n", country.RawName, country.ISO2, country.ISO3, country.OfficialName)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: macrofetch <run|countries> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "run options:")
	fmt.Fprintln(os.Stderr, "  -names    path to a country-name list file (default: built-in list)")
	fmt.Fprintln(os.Stderr, "  -db       sqlite database path (default: disabled)")
	fmt.Fprintln(os.Stderr, "  -out      output workbook path (default: macro_data.xlsx)")
	fmt.Fprintln(os.Stderr, "  -start    first year to pull (default: 1990)")
	fmt.Fprintln(os.Stderr, "  -end      last year to pull (default: 2030)")
	fmt.Fprintln(os.Stderr, "  -verbose  print each pulled table summary")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "countries options:")
	fmt.Fprintln(os.Stderr, "  -names    path to a country-name list file (default: built-in list)")
}

func runFetch(namesPath, dbPath, outPath string, startYear, endYear int, verbose bool) error {
	ctx := context.Background()

	names, err := loadNames(namesPath)
	if err != nil {
		return err
	}

	countryTable := countries.BuildTable(names)
	for _, country := range countryTable {
		if !country.Resolved() {
			fmt.Fprintf(os.Stderr, "unresolved country %q: %s\n", country.RawName, country.OfficialName)
		}
	}
	iso2List := countries.ISO2List(countryTable)
	iso3List := countries.ISO3List(countryTable)
	if len(iso2List) == 0 {
		return fmt.Errorf("no resolvable countries in input")
	}

	st, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	sources, err := buildSources(iso2List, iso3List, startYear, endYear)
	if err != nil {
		return err
	}

	success := 0
	failed := 0
	rows := 0
	tables := make([]model.Table, 0, len(sources))
	for _, source := range sources {
		table, err := source.Fetch(ctx)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "fetch failed source=%s: %v\n", source.Name(), err)
			continue
		}
		success++
		rows += len(table.Rows)
		tables = append(tables, table)
		if verbose {
			fmt.Printf("pulled source=%s table=%s rows=%d\n", source.Name(), table.Name, len(table.Rows))
		}
		if err := st.UpsertObservations(ctx, source.Name(), table.Rows); err != nil {
			return err
		}
	}

	if err := st.UpsertCountries(ctx, countryTable); err != nil {
		return err
	}
	if err := export.WriteWorkbook(outPath, countryTable, tables); err != nil {
		return err
	}

	fmt.Printf("macrofetch run complete (countries=%d pulls=%d success=%d failed=%d rows=%d out=%s)\n",
		len(countryTable), len(sources), success, failed, rows, outPath,
	)
	return nil
}

func buildSources(iso2List, iso3List []string, startYear, endYear int) ([]providers.Source, error) {
	compact, err := compactdata.New()
	if err != nil {
		return nil, err
	}
	mapper, err := datamapper.New()
	if err != nil {
		return nil, err
	}
	bank, err := worldbank.New()
	if err != nil {
		return nil, err
	}

	monthlyStart := fmt.Sprintf("%d-01", startYear)
	monthlyEnd := fmt.Sprintf("%d-12", endYear)
	yearStart := strconv.Itoa(startYear)
	yearEnd := strconv.Itoa(endYear)

	compactPull := func(req compactdata.SeriesRequest) providers.Source {
		name := fmt.Sprintf("%s %s.%s", req.Dataset, req.Freq, req.Indicator)
		return providers.NewSource(name, func(ctx context.Context) (model.Table, error) {
			return compact.FetchSeries(ctx, req)
		})
	}
	mapperPull := func(indicator string) providers.Source {
		return providers.NewSource("datamapper "+indicator, func(ctx context.Context) (model.Table, error) {
			return mapper.FetchIndicator(ctx, indicator, iso3List, startYear, endYear)
		})
	}
	bankPull := func(indicator string) providers.Source {
		return providers.NewSource("worldbank "+indicator, func(ctx context.Context) (model.Table, error) {
			return bank.FetchIndicator(ctx, indicator, iso3List, startYear, endYear)
		})
	}

	return []providers.Source{
		compactPull(compactdata.SeriesRequest{
			Dataset: "CPI", Freq: model.FreqMonthly, Indicator: "PCPI_IX",
			ISO2: iso2List, StartPeriod: monthlyStart, EndPeriod: monthlyEnd,
		}),
		compactPull(compactdata.SeriesRequest{
			Dataset: "ER", Freq: model.FreqMonthly, Indicator: "ENDA_XDC_USD_RATE",
			ISO2: iso2List, StartPeriod: monthlyStart, EndPeriod: monthlyEnd,
		}),
		compactPull(compactdata.SeriesRequest{
			Dataset: "IFS", Freq: model.FreqQuarterly, Indicator: "NGDP_R_SA_XDC",
			ISO2: iso2List, StartPeriod: yearStart, EndPeriod: yearEnd,
		}),
		mapperPull("NGDP_RPCH"),
		mapperPull("PCPIPCH"),
		bankPull("NY.GDP.MKTP.KD.ZG"),
		bankPull("BN.CAB.XOKA.GD.ZS"),
		bankPull("BX.KLT.DINV.WD.GD.ZS"),
		bankPull("FI.RES.TOTL.MO"),
		bankPull("GC.DOD.TOTL.GD.ZS"),
	}, nil
}

func openStore(path string) (store.Store, error) {
	if strings.TrimSpace(path) == "" {
		return &store.NopStore{}, nil
	}
	return sqlite.New(path)
}

// loadNames reads one raw country name per line; blank lines and # comments
// are skipped. A nil result selects the built-in list.
func loadNames(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	names := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("name list %s is empty", path)
	}
	return names, nil
}
