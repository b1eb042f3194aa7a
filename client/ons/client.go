package ons

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

const (
	// SearchWindow is how many datasets SearchDatasets scans. The API has no
	// search endpoint, so anything past the first page of this size is never matched.
	SearchWindow = 100

	DefaultEdition = "time-series"
	DefaultVersion = "latest"
)

// popularDatasets are well known dataset identifiers that reliably resolve.
var popularDatasets = []string{
	"cpih01",
	"mid-year-pop-est",
	"regional-gdp-by-year",
	"wellbeing-quarterly",
	"labour-market",
	"ageing-population-estimates",
	"uk-business-by-enterprises-and-local-units",
	"trade",
	"weekly-deaths-region",
	"gdp-to-four-decimal-places",
}

// ListDatasets returns one page of the dataset catalogue
func (c Client) ListDatasets(ctx context.Context, limit, offset int) (*DatasetList, error) {
	var res DatasetList
	err := c.get(ctx, "datasets", &res,
		param{"limit", strconv.Itoa(limit)},
		param{"offset", strconv.Itoa(offset)},
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetDataset retrieves a single dataset by its identifier
func (c Client) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	var res Dataset
	err := c.get(ctx, fmt.Sprintf("datasets/%s", id), &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchDatasets matches query case-insensitively against the title, description
// and id of the first SearchWindow datasets, returning at most limit of them.
// Datasets outside that window are not searched.
func (c Client) SearchDatasets(ctx context.Context, query string, limit int) ([]Dataset, error) {
	list, err := c.ListDatasets(ctx, SearchWindow, 0)
	if err != nil {
		return nil, err
	}
	return matchDatasets(list.Items, query, limit), nil
}

func matchDatasets(items []Dataset, query string, limit int) []Dataset {
	q := strings.ToLower(query)
	matches := make([]Dataset, 0)
	for _, d := range items {
		if len(matches) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(d.Title), q) ||
			strings.Contains(strings.ToLower(d.Description), q) ||
			strings.Contains(strings.ToLower(d.ID), q) {
			matches = append(matches, d)
		}
	}
	return matches
}

// GetVersion retrieves one version of a dataset edition
func (c Client) GetVersion(ctx context.Context, id, edition, version string) (*Version, error) {
	var res Version
	err := c.get(ctx, fmt.Sprintf("datasets/%s/editions/%s/versions/%s", id, edition, version), &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetObservations queries the observations of a dataset version filtered by dimensions.
// Dimension values are sent as given, without URL escaping, so wildcards such as "*"
// reach the API verbatim.
func (c Client) GetObservations(ctx context.Context, id, edition, version string, dimensions map[string]string) (*ObservationResponse, error) {
	var res ObservationResponse
	endpoint := fmt.Sprintf("datasets/%s/editions/%s/versions/%s/observations", id, edition, version)
	if q := DimensionQuery(dimensions); q != "" {
		endpoint += "?" + q
	}
	err := fetch(ctx, c.apiRequests(endpoint).ToJSON(&res))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DimensionQuery renders dimensions as key=value pairs joined by '&', ordered by key.
func DimensionQuery(dimensions map[string]string) string {
	keys := make([]string, 0, len(dimensions))
	for k := range dimensions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+dimensions[k])
	}
	return strings.Join(pairs, "&")
}

// GetDimensionOptions lists the options of one dataset dimension
func (c Client) GetDimensionOptions(ctx context.Context, id, dimensionID string) (*DimensionOptions, error) {
	var res DimensionOptions
	err := c.get(ctx, fmt.Sprintf("datasets/%s/dimensions/%s/options", id, dimensionID), &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// PopularDatasets returns the identifiers of commonly used datasets. No request is made.
func (c Client) PopularDatasets() []string {
	ids := make([]string, len(popularDatasets))
	copy(ids, popularDatasets)
	return ids
}

// HealthCheck reports whether a one item listing succeeds.
func (c Client) HealthCheck(ctx context.Context) bool {
	if _, err := c.ListDatasets(ctx, 1, 0); err != nil {
		slog.Debug("ONS API health check failed", "error", err)
		return false
	}
	return true
}
