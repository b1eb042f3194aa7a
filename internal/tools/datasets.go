package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
)

const (
	defaultListLimit   = 20
	defaultSearchLimit = 10
	maxLimit           = 1000
)

type ListDatasetsParams struct {
	Limit  *int `json:"limit,omitempty" jsonschema:"Maximum number of datasets to return (1-1000, default 20)"`
	Offset *int `json:"offset,omitempty" jsonschema:"Number of datasets to skip (default 0)"`
}

type GetDatasetParams struct {
	DatasetID string `json:"dataset_id" jsonschema:"The dataset identifier, e.g. cpih01"`
}

type SearchDatasetsParams struct {
	Query string `json:"query" jsonschema:"Text to look for in dataset titles, descriptions and ids"`
	Limit *int   `json:"limit,omitempty" jsonschema:"Maximum number of results (1-1000, default 10)"`
}

type GetObservationParams struct {
	DatasetID  string            `json:"dataset_id" jsonschema:"The dataset identifier"`
	Edition    string            `json:"edition,omitempty" jsonschema:"Dataset edition (default time-series)"`
	Version    string            `json:"version,omitempty" jsonschema:"Dataset version (default latest)"`
	Dimensions map[string]string `json:"dimensions" jsonschema:"Dimension filters, e.g. {\"geography\": \"K02000001\", \"time\": \"*\"}"`
}

type GetLatestDataParams struct {
	DatasetID  string `json:"dataset_id" jsonschema:"The dataset identifier"`
	Geography  string `json:"geography,omitempty" jsonschema:"Geography code, e.g. K02000001 for the UK"`
	TimePeriod string `json:"time_period,omitempty" jsonschema:"Time period, e.g. 2023 or Jan-23"`
}

func checkLimit(limit int) error {
	if limit < 1 || limit > maxLimit {
		return invalidParams("limit must be between 1 and %d, got %d", maxLimit, limit)
	}
	return nil
}

func requireDatasetID(id string) error {
	if id == "" {
		return invalidParams("dataset_id is required")
	}
	return nil
}

// ListDatasets lists one page of the ONS dataset catalogue
func (t tool) ListDatasets(ctx context.Context, request *mcp.CallToolRequest, params ListDatasetsParams) (*mcp.CallToolResult, any, error) {
	limit := intOr(params.Limit, defaultListLimit)
	offset := intOr(params.Offset, 0)
	if err := checkLimit(limit); err != nil {
		return nil, nil, err
	}
	if offset < 0 {
		return nil, nil, invalidParams("offset must not be negative, got %d", offset)
	}

	res, err := t.service.ListDatasets(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

// GetDataset returns the metadata of one dataset
func (t tool) GetDataset(ctx context.Context, request *mcp.CallToolRequest, params GetDatasetParams) (*mcp.CallToolResult, any, error) {
	if err := requireDatasetID(params.DatasetID); err != nil {
		return nil, nil, err
	}
	res, err := t.service.GetDataset(ctx, params.DatasetID)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

// SearchDatasets searches the first page of the catalogue
func (t tool) SearchDatasets(ctx context.Context, request *mcp.CallToolRequest, params SearchDatasetsParams) (*mcp.CallToolResult, any, error) {
	if params.Query == "" {
		return nil, nil, invalidParams("query is required")
	}
	limit := intOr(params.Limit, defaultSearchLimit)
	if err := checkLimit(limit); err != nil {
		return nil, nil, err
	}

	res, err := t.service.SearchDatasets(ctx, params.Query, limit)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

// GetObservation queries observations with explicit dimension filters
func (t tool) GetObservation(ctx context.Context, request *mcp.CallToolRequest, params GetObservationParams) (*mcp.CallToolResult, any, error) {
	if err := requireDatasetID(params.DatasetID); err != nil {
		return nil, nil, err
	}
	if len(params.Dimensions) == 0 {
		return nil, nil, invalidParams("dimensions must contain at least one filter")
	}
	for k, v := range params.Dimensions {
		if k == "" || v == "" {
			return nil, nil, invalidParams("dimension filters need a name and a value, got %q=%q", k, v)
		}
	}

	res, err := t.service.GetObservations(ctx,
		params.DatasetID,
		stringOr(params.Edition, ons.DefaultEdition),
		stringOr(params.Version, ons.DefaultVersion),
		params.Dimensions,
	)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

// GetLatestData returns the latest observations of a dataset with default filters
func (t tool) GetLatestData(ctx context.Context, request *mcp.CallToolRequest, params GetLatestDataParams) (*mcp.CallToolResult, any, error) {
	if err := requireDatasetID(params.DatasetID); err != nil {
		return nil, nil, err
	}
	res, err := t.service.GetLatestData(ctx, params.DatasetID, params.Geography, params.TimePeriod)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}
