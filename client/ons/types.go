package ons

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ONS Beta API DTOs

type Link struct {
	ID   string `json:"id,omitempty"`
	HRef string `json:"href,omitempty"`
}

type DatasetLinks struct {
	Self          *Link `json:"self,omitempty"`
	Editions      *Link `json:"editions,omitempty"`
	LatestVersion *Link `json:"latest_version,omitempty"`
	Taxonomy      *Link `json:"taxonomy,omitempty"`
}

type Dataset struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	State             string        `json:"state,omitempty"`
	Type              string        `json:"type,omitempty"`
	Keywords          []string      `json:"keywords,omitempty"`
	NextRelease       string        `json:"next_release,omitempty"`
	ReleaseFrequency  string        `json:"release_frequency,omitempty"`
	NationalStatistic bool          `json:"national_statistic,omitempty"`
	Links             *DatasetLinks `json:"links,omitempty"`
	Dimensions        []Dimension   `json:"dimensions,omitempty"`
}

// HasDimension reports whether the dataset declares a dimension with the given id or name.
func (d Dataset) HasDimension(name string) bool {
	return HasDimension(d.Dimensions, name)
}

// LatestEditionVersion returns the edition and version named by the latest_version link.
func (d Dataset) LatestEditionVersion() (edition, version string, ok bool) {
	if d.Links == nil || d.Links.LatestVersion == nil {
		return "", "", false
	}
	_, path, found := strings.Cut(d.Links.LatestVersion.HRef, "/editions/")
	if !found {
		return "", "", false
	}
	edition, version, found = strings.Cut(strings.TrimSuffix(path, "/"), "/versions/")
	if !found || edition == "" || version == "" || strings.Contains(version, "/") {
		return "", "", false
	}
	return edition, version, true
}

// HasDimension reports whether dims holds a dimension with the given id or name.
func HasDimension(dims []Dimension, name string) bool {
	for _, dim := range dims {
		if dim.ID == name || dim.Name == name {
			return true
		}
	}
	return false
}

type DimensionLinks struct {
	Options  *Link `json:"options,omitempty"`
	CodeList *Link `json:"code_list,omitempty"`
	Version  *Link `json:"version,omitempty"`
}

type Dimension struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Label       string          `json:"label,omitempty"`
	Description string          `json:"description,omitempty"`
	Links       *DimensionLinks `json:"links,omitempty"`
}

// Key returns the identifier used in observation filters and option lookups.
func (d Dimension) Key() string {
	if d.ID != "" {
		return d.ID
	}
	return d.Name
}

type DatasetList struct {
	Items      []Dataset `json:"items"`
	Count      int       `json:"count"`
	Offset     int       `json:"offset"`
	Limit      int       `json:"limit"`
	TotalCount int       `json:"total_count"`
}

type Version struct {
	ID          string      `json:"id,omitempty"`
	Edition     string      `json:"edition,omitempty"`
	Version     int         `json:"version,omitempty"`
	State       string      `json:"state,omitempty"`
	ReleaseDate string      `json:"release_date,omitempty"`
	Dimensions  []Dimension `json:"dimensions,omitempty"`
	Links       struct {
		Dataset *Link `json:"dataset,omitempty"`
		Edition *Link `json:"edition,omitempty"`
		Self    *Link `json:"self,omitempty"`
	} `json:"links"`
}

// DimensionValue is the value an observation takes along one dimension.
// Upstream sends either a bare string or an object with id, label and href.
type DimensionValue struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	HRef  string `json:"href,omitempty"`
}

func (v *DimensionValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = DimensionValue{ID: s, Label: s}
		return nil
	}
	type plain DimensionValue
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = DimensionValue(p)
	return nil
}

// Measurement is an observed value. It keeps the upstream textual form and
// also accepts plain JSON numbers.
type Measurement string

func (m *Measurement) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = Measurement(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Measurement(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// Float parses the measurement. ok is false for suppressed or missing values.
func (m Measurement) Float() (f float64, ok bool) {
	f, err := strconv.ParseFloat(string(m), 64)
	return f, err == nil
}

type Observation struct {
	Dimensions  map[string]DimensionValue `json:"dimensions"`
	Observation Measurement               `json:"observation"`
	Metadata    map[string]string         `json:"metadata,omitempty"`
}

type ObservationLinks struct {
	DatasetMetadata *Link `json:"dataset_metadata,omitempty"`
	Self            *Link `json:"self,omitempty"`
	Version         *Link `json:"version,omitempty"`
}

type ObservationResponse struct {
	Observations      []Observation     `json:"observations"`
	TotalObservations int               `json:"total_observations"`
	Limit             int               `json:"limit"`
	Offset            int               `json:"offset"`
	UnitOfMeasure     string            `json:"unit_of_measure,omitempty"`
	Links             *ObservationLinks `json:"links,omitempty"`
	Dimensions        json.RawMessage   `json:"dimensions,omitempty"`
}

type DimensionOption struct {
	Dimension string `json:"dimension"`
	Label     string `json:"label"`
	Option    string `json:"option"`
	Links     struct {
		Code     *Link `json:"code,omitempty"`
		CodeList *Link `json:"code_list,omitempty"`
		Version  *Link `json:"version,omitempty"`
	} `json:"links"`
}

type DimensionOptions struct {
	Items      []DimensionOption `json:"items"`
	Count      int               `json:"count"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
	TotalCount int               `json:"total_count"`
}
