package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/datasets"
)

type DatasetService interface {
	ListDatasets(ctx context.Context, limit, offset int) (*datasets.DatasetPage, error)
	GetDataset(ctx context.Context, id string) (*ons.Dataset, error)
	SearchDatasets(ctx context.Context, query string, limit int) (*datasets.SearchResult, error)
	GetObservations(ctx context.Context, id, edition, version string, dimensions map[string]string) (*datasets.ObservationResult, error)
	GetLatestData(ctx context.Context, id, geography, timePeriod string) (*datasets.LatestData, error)
	GetTimeSeriesData(ctx context.Context, id, geography string) (*datasets.TimeSeries, error)
	GetRegionalData(ctx context.Context, id, timePeriod string) (*datasets.RegionalData, error)
	GetPopularDatasets(ctx context.Context) (*datasets.PopularDatasets, error)
	GetDatasetDimensions(ctx context.Context, id string) (*datasets.DatasetDimensions, error)
	GetDimensionOptions(ctx context.Context, id, dimensionID string) (*ons.DimensionOptions, error)
	HealthCheck(ctx context.Context) *datasets.Health
}

type tool struct {
	service DatasetService
}

// NewBaseTool returns a tool factory
func NewBaseTool(s DatasetService) (t *tool) {
	t = new(tool)
	t.service = s
	return
}

// codeInvalidParams is the JSON-RPC code for invalid method parameters.
const codeInvalidParams = -32602

func invalidParams(format string, args ...any) error {
	return &jsonrpc.Error{
		Code:    codeInvalidParams,
		Message: "invalid parameters: " + fmt.Sprintf(format, args...),
	}
}

// jsonResult renders v as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: string(b),
			},
		},
	}, nil, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
