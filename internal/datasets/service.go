package datasets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
)

const (
	// UKGeography is the geography code for the whole United Kingdom.
	UKGeography = "K02000001"
	// Wildcard selects every option of a dimension.
	Wildcard = "*"

	timeDimension      = "time"
	geographyDimension = "geography"
)

type ONSClient interface {
	ListDatasets(ctx context.Context, limit, offset int) (*ons.DatasetList, error)
	GetDataset(ctx context.Context, id string) (*ons.Dataset, error)
	GetVersion(ctx context.Context, id, edition, version string) (*ons.Version, error)
	SearchDatasets(ctx context.Context, query string, limit int) ([]ons.Dataset, error)
	GetObservations(ctx context.Context, id, edition, version string, dimensions map[string]string) (*ons.ObservationResponse, error)
	GetDimensionOptions(ctx context.Context, id, dimensionID string) (*ons.DimensionOptions, error)
	PopularDatasets() []string
	HealthCheck(ctx context.Context) bool
	BaseURL() string
}

type Service struct {
	client ONSClient
	now    func() time.Time
}

// NewService builds the dataset service on top of an ONS API client
func NewService(c ONSClient) *Service {
	return &Service{client: c, now: time.Now}
}

// ListDatasets returns a page of the catalogue, echoing the requested paging
func (s *Service) ListDatasets(ctx context.Context, limit, offset int) (*DatasetPage, error) {
	res, err := s.client.ListDatasets(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return &DatasetPage{
		Datasets:   nonNil(res.Items),
		Count:      res.Count,
		TotalCount: res.TotalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetDataset returns the metadata of a single dataset
func (s *Service) GetDataset(ctx context.Context, id string) (*ons.Dataset, error) {
	d, err := s.client.GetDataset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset %s: %w", id, err)
	}
	return d, nil
}

// SearchDatasets runs the client side title/description/id search
func (s *Service) SearchDatasets(ctx context.Context, query string, limit int) (*SearchResult, error) {
	res, err := s.client.SearchDatasets(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search datasets for %q: %w", query, err)
	}
	return &SearchResult{
		Query:    query,
		Results:  nonNil(res),
		Count:    len(res),
		Searched: ons.SearchWindow,
	}, nil
}

// GetObservations fetches observations for an explicit edition, version and filter
func (s *Service) GetObservations(ctx context.Context, id, edition, version string, dimensions map[string]string) (*ObservationResult, error) {
	res, err := s.client.GetObservations(ctx, id, edition, version, dimensions)
	if err != nil {
		return nil, fmt.Errorf("failed to get observations for dataset %s: %w", id, err)
	}
	return &ObservationResult{
		DatasetID:         id,
		Edition:           edition,
		Version:           version,
		Dimensions:        dimensions,
		Observations:      nonNil(res.Observations),
		TotalObservations: res.TotalObservations,
		UnitOfMeasure:     res.UnitOfMeasure,
	}, nil
}

// GetDimensionOptions returns the raw options payload for one dimension
func (s *Service) GetDimensionOptions(ctx context.Context, id, dimensionID string) (*ons.DimensionOptions, error) {
	res, err := s.client.GetDimensionOptions(ctx, id, dimensionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get options of dimension %s for dataset %s: %w", dimensionID, id, err)
	}
	return res, nil
}

// GetLatestData fetches the dataset metadata and then its latest observations.
// Explicit geography and time filters are used as given. When neither is set the
// filter defaults to every time period and the UK-wide geography, for whichever of
// those dimensions the dataset declares.
func (s *Service) GetLatestData(ctx context.Context, id, geography, timePeriod string) (*LatestData, error) {
	res, err := s.latestData(ctx, id, geography, timePeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest data for dataset %s: %w", id, err)
	}
	return res, nil
}

func (s *Service) latestData(ctx context.Context, id, geography, timePeriod string) (*LatestData, error) {
	dataset, err := s.client.GetDataset(ctx, id)
	if err != nil {
		return nil, err
	}

	filters := make(map[string]string)
	if geography != "" {
		filters[geographyDimension] = geography
	}
	if timePeriod != "" {
		filters[timeDimension] = timePeriod
	}
	if len(filters) == 0 {
		dims, err := s.declaredDimensions(ctx, id, dataset)
		if err != nil {
			slog.Warn("Failed to get declared dimensions", "dataset_id", id, "error", err)
		}
		if ons.HasDimension(dims, timeDimension) {
			filters[timeDimension] = Wildcard
		}
		if ons.HasDimension(dims, geographyDimension) {
			filters[geographyDimension] = UKGeography
		}
	}

	obs, err := s.client.GetObservations(ctx, id, ons.DefaultEdition, ons.DefaultVersion, filters)
	if err != nil {
		return nil, err
	}
	return &LatestData{
		DatasetID:         id,
		Title:             dataset.Title,
		Description:       dataset.Description,
		FiltersApplied:    filters,
		Observations:      nonNil(obs.Observations),
		TotalObservations: obs.TotalObservations,
		UnitOfMeasure:     obs.UnitOfMeasure,
	}, nil
}

// GetTimeSeriesData returns every time period for one geography, ordered by the
// time value. Ordering is plain string comparison, so labels such as "Jan-23"
// and "Feb-23" are not in calendar order.
func (s *Service) GetTimeSeriesData(ctx context.Context, id, geography string) (*TimeSeries, error) {
	if geography == "" {
		geography = UKGeography
	}
	filters := map[string]string{
		geographyDimension: geography,
		timeDimension:      Wildcard,
	}
	obs, err := s.client.GetObservations(ctx, id, ons.DefaultEdition, ons.DefaultVersion, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get time series for dataset %s: %w", id, err)
	}

	series := nonNil(obs.Observations)
	slices.SortStableFunc(series, func(a, b ons.Observation) int {
		return strings.Compare(TimeOf(a), TimeOf(b))
	})
	return &TimeSeries{
		DatasetID:     id,
		Geography:     geography,
		Series:        series,
		Count:         len(series),
		UnitOfMeasure: obs.UnitOfMeasure,
	}, nil
}

// TimeOf returns the time dimension value of an observation, or "" when absent.
func TimeOf(o ons.Observation) string {
	return o.Dimensions[timeDimension].ID
}

// GetRegionalData returns every geography, optionally for a single time period
func (s *Service) GetRegionalData(ctx context.Context, id, timePeriod string) (*RegionalData, error) {
	filters := map[string]string{geographyDimension: Wildcard}
	if timePeriod != "" {
		filters[timeDimension] = timePeriod
	}
	obs, err := s.client.GetObservations(ctx, id, ons.DefaultEdition, ons.DefaultVersion, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get regional data for dataset %s: %w", id, err)
	}
	return &RegionalData{
		DatasetID:     id,
		TimePeriod:    timePeriod,
		Regions:       nonNil(obs.Observations),
		Count:         len(obs.Observations),
		UnitOfMeasure: obs.UnitOfMeasure,
	}, nil
}

// GetPopularDatasets resolves the popular dataset ids. Ids that fail to resolve are
// logged and left out.
func (s *Service) GetPopularDatasets(ctx context.Context) (*PopularDatasets, error) {
	ids := s.client.PopularDatasets()
	res := &PopularDatasets{Datasets: make([]ons.Dataset, 0, len(ids))}
	for _, id := range ids {
		d, err := s.client.GetDataset(ctx, id)
		if err != nil {
			slog.Warn("Skipping popular dataset", "dataset_id", id, "error", err)
			res.Unavailable = append(res.Unavailable, id)
			continue
		}
		res.Datasets = append(res.Datasets, *d)
	}
	res.Count = len(res.Datasets)
	return res, nil
}

// GetDatasetDimensions lists the declared dimensions of a dataset with their options.
// Options are fetched concurrently; a dimension whose options cannot be fetched is
// returned with no options and the error message.
func (s *Service) GetDatasetDimensions(ctx context.Context, id string) (*DatasetDimensions, error) {
	dataset, err := s.client.GetDataset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions for dataset %s: %w", id, err)
	}
	declared, err := s.declaredDimensions(ctx, id, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions for dataset %s: %w", id, err)
	}

	dims := make([]DimensionWithOptions, len(declared))
	var wg sync.WaitGroup
	for i, dim := range declared {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry := DimensionWithOptions{Dimension: dim, Options: []ons.DimensionOption{}}
			opts, err := s.client.GetDimensionOptions(ctx, id, dim.Key())
			if err != nil {
				slog.Warn("Failed to get dimension options", "dataset_id", id, "dimension", dim.Key(), "error", err)
				entry.Error = err.Error()
			} else {
				entry.Options = nonNil(opts.Items)
			}
			dims[i] = entry
		}()
	}
	wg.Wait()

	return &DatasetDimensions{
		DatasetID:  id,
		Title:      dataset.Title,
		Dimensions: dims,
	}, nil
}

// declaredDimensions returns the dimensions carried by the dataset payload. The
// dataset resource usually has none, in which case they are read from the version
// named by its latest_version link, or from time-series/latest without one.
func (s *Service) declaredDimensions(ctx context.Context, id string, dataset *ons.Dataset) ([]ons.Dimension, error) {
	if len(dataset.Dimensions) > 0 {
		return dataset.Dimensions, nil
	}
	edition, version, ok := dataset.LatestEditionVersion()
	if !ok {
		edition, version = ons.DefaultEdition, ons.DefaultVersion
	}
	v, err := s.client.GetVersion(ctx, id, edition, version)
	if err != nil {
		return nil, err
	}
	return v.Dimensions, nil
}

// HealthCheck reports the reachability of the ONS API
func (s *Service) HealthCheck(ctx context.Context) *Health {
	status := StatusUnhealthy
	if s.client.HealthCheck(ctx) {
		status = StatusHealthy
	}
	return &Health{
		Status:    status,
		APIURL:    s.client.BaseURL(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
