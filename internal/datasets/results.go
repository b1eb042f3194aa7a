package datasets

import "github.com/dwain-barnes/uk-ons-mcp-server/client/ons"

type DatasetPage struct {
	Datasets   []ons.Dataset `json:"datasets"`
	Count      int           `json:"count"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

type SearchResult struct {
	Query   string        `json:"query"`
	Results []ons.Dataset `json:"results"`
	Count   int           `json:"count"`
	// Searched is the number of catalogue entries scanned, not the catalogue size.
	Searched int `json:"datasets_searched"`
}

type ObservationResult struct {
	DatasetID         string            `json:"dataset_id"`
	Edition           string            `json:"edition"`
	Version           string            `json:"version"`
	Dimensions        map[string]string `json:"dimensions"`
	Observations      []ons.Observation `json:"observations"`
	TotalObservations int               `json:"total_observations"`
	UnitOfMeasure     string            `json:"unit_of_measure,omitempty"`
}

type LatestData struct {
	DatasetID         string            `json:"dataset_id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	FiltersApplied    map[string]string `json:"filters_applied"`
	Observations      []ons.Observation `json:"observations"`
	TotalObservations int               `json:"total_observations"`
	UnitOfMeasure     string            `json:"unit_of_measure,omitempty"`
}

type TimeSeries struct {
	DatasetID     string            `json:"dataset_id"`
	Geography     string            `json:"geography"`
	Series        []ons.Observation `json:"time_series"`
	Count         int               `json:"count"`
	UnitOfMeasure string            `json:"unit_of_measure,omitempty"`
}

type RegionalData struct {
	DatasetID     string            `json:"dataset_id"`
	TimePeriod    string            `json:"time_period,omitempty"`
	Regions       []ons.Observation `json:"regional_data"`
	Count         int               `json:"count"`
	UnitOfMeasure string            `json:"unit_of_measure,omitempty"`
}

type PopularDatasets struct {
	Datasets    []ons.Dataset `json:"datasets"`
	Count       int           `json:"count"`
	Unavailable []string      `json:"unavailable,omitempty"`
}

type DimensionWithOptions struct {
	ons.Dimension
	Options []ons.DimensionOption `json:"options"`
	Error   string                `json:"error,omitempty"`
}

type DatasetDimensions struct {
	DatasetID  string                 `json:"dataset_id"`
	Title      string                 `json:"title"`
	Dimensions []DimensionWithOptions `json:"dimensions"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type Health struct {
	Status    string `json:"status"`
	APIURL    string `json:"api_url"`
	Timestamp string `json:"timestamp"`
}
