package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register adds every ONS tool to the server
func Register(mcpServer *mcp.Server, s DatasetService) {
	mcpTools := NewBaseTool(s)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "list_datasets",
		Description: `Lists datasets published on the ONS Beta API.
		Arguments:
		- limit (optional): Maximum number of datasets to return, 1-1000 (default: 20).
		- offset (optional): Number of datasets to skip (default: 0).
		Returns:
		JSON with the datasets, the count and total_count, and the limit and offset used.`},
		mcpTools.ListDatasets,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_dataset",
		Description: `Gets the metadata of one dataset.
		Arguments:
		- dataset_id (required): The dataset identifier (e.g., 'cpih01', 'mid-year-pop-est').
		Returns:
		The dataset as JSON, including its title, description, state, links and dimensions.`},
		mcpTools.GetDataset,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "search_datasets",
		Description: `Searches datasets by text in their title, description or id (case-insensitive).
		Only the first 100 datasets of the catalogue are searched, so datasets beyond them are never found.
		Arguments:
		- query (required): Text to search for (e.g., 'inflation', 'population').
		- limit (optional): Maximum number of results, 1-1000 (default: 10).
		Returns:
		JSON with the query, the matching datasets and their count.`},
		mcpTools.SearchDatasets,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_observation",
		Description: `Gets observations for a dataset version filtered by dimensions.
		Arguments:
		- dataset_id (required): The dataset identifier.
		- edition (optional): Edition name (default: 'time-series').
		- version (optional): Version number (default: 'latest').
		- dimensions (required): Map of dimension to option (e.g., {"geography": "K02000001", "time": "2023"}). Use '*' to select every option of one dimension.
		Returns:
		JSON with the filters used, the observations and the total number of observations.`},
		mcpTools.GetObservation,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_latest_data",
		Description: `Gets the latest observations of a dataset.
		Arguments:
		- dataset_id (required): The dataset identifier.
		- geography (optional): Geography code (e.g., 'K02000001' for the UK, 'E92000001' for England).
		- time_period (optional): Time period (e.g., '2023', 'Jan-23').
		When neither filter is given all time periods for the UK are requested, for the dimensions the dataset declares.
		Returns:
		JSON with the dataset title and description, the filters applied and the observations.`},
		mcpTools.GetLatestData,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_time_series",
		Description: `Gets every time period of a dataset for one geography, ordered by time label.
		Ordering compares the labels as text, so month labels such as 'Jan-23' are not in calendar order.
		Arguments:
		- dataset_id (required): The dataset identifier.
		- geography (optional): Geography code (default: 'K02000001').
		Returns:
		JSON with the ordered series.`},
		mcpTools.GetTimeSeries,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_regional_data",
		Description: `Compares every geography of a dataset.
		Arguments:
		- dataset_id (required): The dataset identifier.
		- time_period (optional): Restrict the comparison to one time period.
		Returns:
		JSON with one observation per geography.`},
		mcpTools.GetRegionalData,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_popular_datasets",
		Description: `Gets the metadata of commonly used datasets. Datasets that cannot be fetched are listed as unavailable.
		Returns:
		JSON with the datasets that resolved.`},
		mcpTools.GetPopularDatasets,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_dataset_dimensions",
		Description: `Lists the dimensions of a dataset with their options.
		Arguments:
		- dataset_id (required): The dataset identifier.
		Returns:
		JSON with one entry per dimension. A dimension whose options could not be fetched has no options and an error message.`},
		mcpTools.GetDatasetDimensions,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "get_dimension_options",
		Description: `Lists the options of one dataset dimension.
		Arguments:
		- dataset_id (required): The dataset identifier.
		- dimension_id (required): The dimension identifier (e.g., 'geography', 'time').
		Returns:
		The options payload as JSON.`},
		mcpTools.GetDimensionOptions,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "health_check",
		Description: `Checks whether the ONS API is reachable.
		Returns:
		JSON with status 'healthy' or 'unhealthy', the API URL and a timestamp.`},
		mcpTools.HealthCheck,
	)
}
