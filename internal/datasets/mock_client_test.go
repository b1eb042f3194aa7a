package datasets

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
)

type MockONSClient struct {
	mock.Mock
}

func (m *MockONSClient) ListDatasets(ctx context.Context, limit, offset int) (*ons.DatasetList, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ons.DatasetList), args.Error(1)
}

func (m *MockONSClient) GetDataset(ctx context.Context, id string) (*ons.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ons.Dataset), args.Error(1)
}

func (m *MockONSClient) GetVersion(ctx context.Context, id, edition, version string) (*ons.Version, error) {
	args := m.Called(ctx, id, edition, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ons.Version), args.Error(1)
}

func (m *MockONSClient) SearchDatasets(ctx context.Context, query string, limit int) ([]ons.Dataset, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ons.Dataset), args.Error(1)
}

func (m *MockONSClient) GetObservations(ctx context.Context, id, edition, version string, dimensions map[string]string) (*ons.ObservationResponse, error) {
	args := m.Called(ctx, id, edition, version, dimensions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ons.ObservationResponse), args.Error(1)
}

func (m *MockONSClient) GetDimensionOptions(ctx context.Context, id, dimensionID string) (*ons.DimensionOptions, error) {
	args := m.Called(ctx, id, dimensionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ons.DimensionOptions), args.Error(1)
}

func (m *MockONSClient) PopularDatasets() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockONSClient) HealthCheck(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockONSClient) BaseURL() string {
	args := m.Called()
	return args.String(0)
}
