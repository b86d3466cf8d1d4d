package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"macrodata/internal/model"
)

type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) UpsertCountries(ctx context.Context, countries []model.CountryCode) error {
	if len(countries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO countries (raw_name, iso2, iso3, official_name)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(raw_name) DO UPDATE SET
			iso2 = excluded.iso2,
			iso3 = excluded.iso3,
			official_name = excluded.official_name
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, country := range countries {
		_, err = stmt.ExecContext(ctx, country.RawName, country.ISO2, country.ISO3, country.OfficialName)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (s *Store) UpsertObservations(ctx context.Context, source string, observations []model.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO observations (
			source, indicator, freq, entity_code, entity_name, area_type,
			period, year, value, ingested_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source, indicator, freq, entity_code, period)
		DO UPDATE SET
			entity_name = excluded.entity_name,
			area_type = excluded.area_type,
			year = excluded.year,
			value = excluded.value,
			ingested_at = excluded.ingested_at
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range observations {
		observation := observations[i]
		var year any
		if observation.Year != nil {
			year = *observation.Year
		}
		var value any
		if observation.Value != nil {
			value = *observation.Value
		}
		_, err = stmt.ExecContext(
			ctx,
			source,
			observation.IndicatorCode,
			string(observation.Freq),
			observation.EntityCode,
			observation.EntityName,
			observation.AreaType,
			observation.Period,
			year,
			value,
			now,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	return nil
}

func (s *Store) migrate() error {
	statements := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS countries (
			raw_name TEXT NOT NULL,
			iso2 TEXT NOT NULL,
			iso3 TEXT NOT NULL,
			official_name TEXT NOT NULL,
			PRIMARY KEY (raw_name)
		);`,
		`CREATE TABLE IF NOT EXISTS observations (
			source TEXT NOT NULL,
			indicator TEXT NOT NULL,
			freq TEXT NOT NULL,
			entity_code TEXT NOT NULL,
			entity_name TEXT,
			area_type TEXT,
			period TEXT NOT NULL,
			year INTEGER,
			value REAL,
			ingested_at TEXT NOT NULL,
			PRIMARY KEY (source, indicator, freq, entity_code, period)
		);`,
	}

	for _, statement := range statements {
		if _, err := s.db.Exec(statement); err != nil {
			return err
		}
	}

	return nil
}
