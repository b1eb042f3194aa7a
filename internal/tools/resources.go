package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
	"github.com/dwain-barnes/uk-ons-mcp-server/internal/datasets"
)

const (
	PopularDatasetsURI = "ons://datasets/popular"
	APIInfoURI         = "ons://api/info"
)

type PopularDataset struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var popularDatasets = []PopularDataset{
	{"cpih01", "Consumer Prices Index including owner occupiers' housing costs (CPIH)", "Monthly inflation measure including housing costs"},
	{"mid-year-pop-est", "Population estimates", "Mid-year population estimates by age, sex and geography"},
	{"regional-gdp-by-year", "Regional GDP by year", "Gross domestic product for UK regions and countries"},
	{"wellbeing-quarterly", "Quarterly personal well-being estimates", "Life satisfaction, worthwhile, happiness and anxiety"},
	{"labour-market", "Labour market statistics", "Employment, unemployment and economic inactivity"},
	{"ageing-population-estimates", "Ageing population estimates", "Population estimates for older age groups"},
	{"uk-business-by-enterprises-and-local-units", "UK business activity", "Counts of enterprises and local units by industry and size"},
	{"trade", "UK trade", "Imports and exports of goods by country and commodity"},
	{"weekly-deaths-region", "Weekly deaths by region", "Registered deaths in England and Wales by region"},
	{"gdp-to-four-decimal-places", "GDP monthly estimate", "Monthly gross domestic product index to four decimal places"},
}

type apiInfo struct {
	Name           string            `json:"name"`
	BaseURL        string            `json:"base_url"`
	Documentation  string            `json:"documentation"`
	Authentication string            `json:"authentication"`
	Endpoints      map[string]string `json:"endpoints"`
	Geographies    map[string]string `json:"common_geographies"`
	Notes          []string          `json:"notes"`
}

func newAPIInfo(baseURL string) apiInfo {
	return apiInfo{
		Name:           "ONS Beta API",
		BaseURL:        baseURL,
		Documentation:  "https://developer.ons.gov.uk/",
		Authentication: "none",
		Endpoints: map[string]string{
			"datasets":     "/datasets",
			"dataset":      "/datasets/{id}",
			"version":      "/datasets/{id}/editions/{edition}/versions/{version}",
			"observations": "/datasets/{id}/editions/{edition}/versions/{version}/observations",
			"options":      "/datasets/{id}/dimensions/{dimension}/options",
		},
		Geographies: map[string]string{
			datasets.UKGeography: "United Kingdom",
			"E92000001":          "England",
			"W92000004":          "Wales",
			"S92000003":          "Scotland",
			"N92000002":          "Northern Ireland",
		},
		Notes: []string{
			"Use * as a dimension value to select every option.",
			"search_datasets only scans the first 100 datasets of the catalogue.",
		},
	}
}

func staticResource(uri string, v any) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req.Params.URI != uri {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: uri, MIMEType: "application/json", Text: string(b)},
			},
		}, nil
	}
}

// RegisterResources adds the static popular dataset list and API description
func RegisterResources(s *mcp.Server, baseURL string) {
	if baseURL == "" {
		baseURL = ons.DefaultBaseURL
	}
	s.AddResource(&mcp.Resource{
		URI:         PopularDatasetsURI,
		Name:        "popular-datasets",
		Description: "Curated list of commonly used ONS datasets",
		MIMEType:    "application/json",
	}, staticResource(PopularDatasetsURI, popularDatasets))
	s.AddResource(&mcp.Resource{
		URI:         APIInfoURI,
		Name:        "api-info",
		Description: "ONS Beta API endpoints, geography codes and usage notes",
		MIMEType:    "application/json",
	}, staticResource(APIInfoURI, newAPIInfo(baseURL)))
}
