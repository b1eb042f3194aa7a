package tools

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/datasets"
)

type MockDatasetService struct {
	mock.Mock
}

func (m *MockDatasetService) ListDatasets(ctx context.Context, limit, offset int) (*datasets.DatasetPage, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.DatasetPage), args.Error(1)
}

func (m *MockDatasetService) GetDataset(ctx context.Context, id string) (*ons.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ons.Dataset), args.Error(1)
}

func (m *MockDatasetService) SearchDatasets(ctx context.Context, query string, limit int) (*datasets.SearchResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.SearchResult), args.Error(1)
}

func (m *MockDatasetService) GetObservations(ctx context.Context, id, edition, version string, dimensions map[string]string) (*datasets.ObservationResult, error) {
	args := m.Called(ctx, id, edition, version, dimensions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.ObservationResult), args.Error(1)
}

func (m *MockDatasetService) GetLatestData(ctx context.Context, id, geography, timePeriod string) (*datasets.LatestData, error) {
	args := m.Called(ctx, id, geography, timePeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.LatestData), args.Error(1)
}

func (m *MockDatasetService) GetTimeSeriesData(ctx context.Context, id, geography string) (*datasets.TimeSeries, error) {
	args := m.Called(ctx, id, geography)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.TimeSeries), args.Error(1)
}

func (m *MockDatasetService) GetRegionalData(ctx context.Context, id, timePeriod string) (*datasets.RegionalData, error) {
	args := m.Called(ctx, id, timePeriod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.RegionalData), args.Error(1)
}

func (m *MockDatasetService) GetPopularDatasets(ctx context.Context) (*datasets.PopularDatasets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.PopularDatasets), args.Error(1)
}

func (m *MockDatasetService) GetDatasetDimensions(ctx context.Context, id string) (*datasets.DatasetDimensions, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.DatasetDimensions), args.Error(1)
}

func (m *MockDatasetService) GetDimensionOptions(ctx context.Context, id, dimensionID string) (*ons.DimensionOptions, error) {
	args := m.Called(ctx, id, dimensionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ons.DimensionOptions), args.Error(1)
}

func (m *MockDatasetService) HealthCheck(ctx context.Context) *datasets.Health {
	args := m.Called(ctx)
	return args.Get(0).(*datasets.Health)
}
