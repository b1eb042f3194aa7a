package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/datasets"
)

const datasetsPage = `{"count":2,"limit":1,"offset":0,"total_count":2,"items":[{"id":"cpih01","title":"CPIH","description":"Inflation"}]}`

func fakeONS(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/datasets":
			w.Write([]byte(datasetsPage))
		case r.URL.Path == "/datasets/cpih01":
			w.Write([]byte(`{"id":"cpih01","title":"CPIH","dimensions":[{"id":"time","name":"time"}]}`))
		case r.URL.Path == "/datasets/trade":
			w.Write([]byte(`{"id":"trade","title":"Trade","links":{"latest_version":{"href":"` + "http://" + r.Host + `/datasets/trade/editions/time-series/versions/2","id":"2"}}}`))
		case r.URL.Path == "/datasets/trade/editions/time-series/versions/2":
			w.Write([]byte(`{"version":2,"dimensions":[{"id":"time","name":"time"},{"id":"geography","name":"geography"}]}`))
		case r.URL.Path == "/datasets/trade/editions/time-series/versions/latest/observations":
			assert.Equal(t, "geography=K02000001&time=*", r.URL.RawQuery)
			w.Write([]byte(`{"observations":[{"dimensions":{"time":"2024"},"observation":"7"}],"total_observations":1}`))
		case strings.HasPrefix(r.URL.Path, "/datasets/trade/dimensions/"):
			w.Write([]byte(`{"items":[{"option":"x","label":"X"}],"count":1}`))
		case strings.HasSuffix(r.URL.Path, "/observations"):
			assert.Equal(t, "geography=K02000001&time=2023", r.URL.RawQuery)
			w.Write([]byte(`{"observations":[{"dimensions":{"time":"2023"},"observation":"130.1"}],"total_observations":1}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("dataset not found"))
		}
	}))
}

func connect(t *testing.T, apiURL string) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	client, err := ons.NewClient(ons.Config{BaseURL: apiURL})
	require.NoError(t, err)

	server := mcp.NewServer(&mcp.Implementation{Name: "uk-ons-mcp-server", Version: "test"}, nil)
	Register(server, datasets.NewService(client))
	RegisterResources(server, apiURL)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	_, err = server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func callText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(*mcp.TextContent).Text
}

func TestServerTools(t *testing.T) {
	api := fakeONS(t)
	defer api.Close()
	session := connect(t, api.URL)
	ctx := context.Background()

	t.Run("all tools listed", func(t *testing.T) {
		res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
		require.NoError(t, err)
		var names []string
		for _, tl := range res.Tools {
			names = append(names, tl.Name)
		}
		for _, name := range []string{"list_datasets", "get_dataset", "search_datasets", "get_observation", "get_latest_data",
			"get_time_series", "get_regional_data", "get_popular_datasets", "get_dataset_dimensions", "get_dimension_options", "health_check"} {
			assert.Contains(t, names, name)
		}
	})

	t.Run("list_datasets", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "list_datasets",
			Arguments: map[string]any{"limit": 1, "offset": 0},
		})
		require.NoError(t, err)
		require.False(t, res.IsError, callText(t, res))

		var page datasets.DatasetPage
		require.NoError(t, json.Unmarshal([]byte(callText(t, res)), &page))
		assert.Len(t, page.Datasets, 1)
		assert.Equal(t, 1, page.Limit)
		assert.Equal(t, 0, page.Offset)
	})

	t.Run("get_dataset", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "get_dataset",
			Arguments: map[string]any{"dataset_id": "cpih01"},
		})
		require.NoError(t, err)
		require.False(t, res.IsError)

		var d ons.Dataset
		require.NoError(t, json.Unmarshal([]byte(callText(t, res)), &d))
		assert.Equal(t, "cpih01", d.ID)
	})

	t.Run("get_dataset not found", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "get_dataset",
			Arguments: map[string]any{"dataset_id": "missing"},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, callText(t, res), "not found")
	})

	t.Run("get_observation", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "get_observation",
			Arguments: map[string]any{
				"dataset_id": "cpih01",
				"dimensions": map[string]any{"geography": "K02000001", "time": "2023"},
			},
		})
		require.NoError(t, err)
		require.False(t, res.IsError, callText(t, res))
		assert.Contains(t, callText(t, res), "130.1")
	})

	t.Run("latest data for a dataset without dimensions", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "get_latest_data",
			Arguments: map[string]any{"dataset_id": "trade"},
		})
		require.NoError(t, err)
		require.False(t, res.IsError, callText(t, res))

		var latest datasets.LatestData
		require.NoError(t, json.Unmarshal([]byte(callText(t, res)), &latest))
		assert.Equal(t, map[string]string{"geography": datasets.UKGeography, "time": datasets.Wildcard}, latest.FiltersApplied)
		assert.Equal(t, 1, latest.TotalObservations)
	})

	t.Run("dimensions of a dataset without dimensions", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "get_dataset_dimensions",
			Arguments: map[string]any{"dataset_id": "trade"},
		})
		require.NoError(t, err)
		require.False(t, res.IsError, callText(t, res))

		var dims datasets.DatasetDimensions
		require.NoError(t, json.Unmarshal([]byte(callText(t, res)), &dims))
		require.Len(t, dims.Dimensions, 2)
		assert.Equal(t, "time", dims.Dimensions[0].Key())
		assert.Len(t, dims.Dimensions[1].Options, 1)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "list_datasets",
			Arguments: map[string]any{"limit": 0},
		})
		require.Error(t, err)
		var rpcErr *jsonrpc.Error
		require.ErrorAs(t, err, &rpcErr)
		assert.EqualValues(t, codeInvalidParams, rpcErr.Code)
		assert.Contains(t, rpcErr.Message, "limit must be between 1 and 1000")
	})

	t.Run("wrong argument type", func(t *testing.T) {
		_, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "list_datasets",
			Arguments: map[string]any{"limit": "ten"},
		})
		require.Error(t, err)
		var rpcErr *jsonrpc.Error
		require.ErrorAs(t, err, &rpcErr)
		assert.EqualValues(t, codeInvalidParams, rpcErr.Code)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "get_weather"})
		assert.Error(t, err)
	})
}

func TestServerResources(t *testing.T) {
	session := connect(t, ons.DefaultBaseURL)
	ctx := context.Background()

	t.Run("popular datasets", func(t *testing.T) {
		res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: PopularDatasetsURI})
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)
		assert.Equal(t, "application/json", res.Contents[0].MIMEType)

		var list []PopularDataset
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &list))
		assert.Len(t, list, 10)
	})

	t.Run("api info", func(t *testing.T) {
		res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: APIInfoURI})
		require.NoError(t, err)
		assert.Contains(t, res.Contents[0].Text, ons.DefaultBaseURL)
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "ons://nothing"})
		assert.Error(t, err)
	})
}

func TestPopularResourceMatchesClient(t *testing.T) {
	client, err := ons.NewClient(ons.Config{})
	require.NoError(t, err)

	var ids []string
	for _, d := range popularDatasets {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, client.PopularDatasets(), ids)
}
