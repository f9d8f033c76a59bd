package charts

import (
	"context"

	"tracknest/internal/store"
)

// Store describes the persistence operations required by the chart service.
type Store interface {
	ChartNames(ctx context.Context) ([]string, error)
	ChartDates(ctx context.Context, chartName string) ([]string, error)
	ChartSongs(ctx context.Context, chartName, chartDate string) ([]store.Song, error)
}

// Service exposes the three-step chart drill-down.
type Service interface {
	Names(ctx context.Context) ([]string, error)
	Dates(ctx context.Context, chartName string) ([]string, error)
	Songs(ctx context.Context, chartName, chartDate string) ([]store.Song, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ChartNames(ctx)
}

func (s *service) Dates(ctx context.Context, chartName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ChartDates(ctx, chartName)
}

func (s *service) Songs(ctx context.Context, chartName, chartDate string) ([]store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ChartSongs(ctx, chartName, chartDate)
}
