package store

import (
	"context"

	"macrodata/internal/model"
)

type Store interface {
	UpsertCountries(ctx context.Context, countries []model.CountryCode) error
	UpsertObservations(ctx context.Context, source string, observations []model.Observation) error
	Close() error
}

type NopStore struct{}

func (s *NopStore) UpsertCountries(ctx context.Context, countries []model.CountryCode) error {
	_ = ctx
	_ = countries
	return nil
}

func (s *NopStore) UpsertObservations(ctx context.Context, source string, observations []model.Observation) error {
	_ = ctx
	_ = source
	_ = observations
	return nil
}

func (s *NopStore) Close() error {
	return nil
}
