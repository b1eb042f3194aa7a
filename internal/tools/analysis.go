package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetTimeSeriesParams struct {
	DatasetID string `json:"dataset_id" jsonschema:"The dataset identifier"`
	Geography string `json:"geography,omitempty" jsonschema:"Geography code (default K02000001, the UK)"`
}

type GetRegionalDataParams struct {
	DatasetID  string `json:"dataset_id" jsonschema:"The dataset identifier"`
	TimePeriod string `json:"time_period,omitempty" jsonschema:"Restrict the comparison to one time period"`
}

type GetDatasetDimensionsParams struct {
	DatasetID string `json:"dataset_id" jsonschema:"The dataset identifier"`
}

type GetDimensionOptionsParams struct {
	DatasetID   string `json:"dataset_id" jsonschema:"The dataset identifier"`
	DimensionID string `json:"dimension_id" jsonschema:"The dimension identifier, e.g. geography or time"`
}

type NoParams struct{}

// GetTimeSeries returns all periods of a dataset for one geography
func (t tool) GetTimeSeries(ctx context.Context, request *mcp.CallToolRequest, params GetTimeSeriesParams) (*mcp.CallToolResult, any, error) {
	if err := requireDatasetID(params.DatasetID); err != nil {
		return nil, nil, err
	}
	res, err := t.service.GetTimeSeriesData(ctx, params.DatasetID, params.Geography)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

// GetRegionalData compares all geographies of a dataset
func (t tool) GetRegionalData(ctx context.Context, request *mcp.CallToolRequest, params GetRegionalDataParams) (*mcp.CallToolResult, any, error) {
	if err := requireDatasetID(params.DatasetID); err != nil {
		return nil, nil, err
	}
	res, err := t.service.GetRegionalData(ctx, params.DatasetID, params.TimePeriod)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

func (t tool) GetPopularDatasets(ctx context.Context, request *mcp.CallToolRequest, _ NoParams) (*mcp.CallToolResult, any, error) {
	res, err := t.service.GetPopularDatasets(ctx)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

// GetDatasetDimensions lists the dimensions of a dataset with their options
func (t tool) GetDatasetDimensions(ctx context.Context, request *mcp.CallToolRequest, params GetDatasetDimensionsParams) (*mcp.CallToolResult, any, error) {
	if err := requireDatasetID(params.DatasetID); err != nil {
		return nil, nil, err
	}
	res, err := t.service.GetDatasetDimensions(ctx, params.DatasetID)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

func (t tool) GetDimensionOptions(ctx context.Context, request *mcp.CallToolRequest, params GetDimensionOptionsParams) (*mcp.CallToolResult, any, error) {
	if err := requireDatasetID(params.DatasetID); err != nil {
		return nil, nil, err
	}
	if params.DimensionID == "" {
		return nil, nil, invalidParams("dimension_id is required")
	}
	res, err := t.service.GetDimensionOptions(ctx, params.DatasetID, params.DimensionID)
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(res)
}

func (t tool) HealthCheck(ctx context.Context, request *mcp.CallToolRequest, _ NoParams) (*mcp.CallToolResult, any, error) {
	return jsonResult(t.service.HealthCheck(ctx))
}
