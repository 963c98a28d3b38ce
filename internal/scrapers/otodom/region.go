package otodom

import (
	"context"
	"encoding/json"
	"fmt"
	"otodom-scraper/internal/components/assert"
	"otodom-scraper/internal/components/telemetry"
	"otodom-scraper/lib/textutil"
	"strings"
)

const (
	report_regions_resolve = "regions.resolve"
)

// Region is the structured location a search is scoped to. City and
// Voivodeship are url path tokens, the ids are portal internal.
type Region struct {
	City        string `json:"city,omitempty"`
	Voivodeship string `json:"voivodeship,omitempty"`
	DistrictID  string `json:"[district_id],omitempty"`
	StreetID    string `json:"[street_id],omitempty"`
}

func (r Region) IsZero() bool {
	return r == Region{}
}

// pathToken is the path segment the region contributes to a search url.
func (r Region) pathToken() string {
	if r.City != "" {
		return r.City
	}
	return r.Voivodeship
}

// suggestion levels returned by the autosuggest endpoint
const (
	levelCity     = "CITY"
	levelDistrict = "DISTRICT"
	levelRegion   = "REGION"
	levelStreet   = "STREET"
)

// flexibleID accepts ids rendered either as json numbers or strings.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*id = flexibleID(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*id = flexibleID(number.String())
	return nil
}

type suggestion struct {
	Level      string     `json:"level"`
	Text       string     `json:"text"`
	CityID     flexibleID `json:"city_id"`
	DistrictID flexibleID `json:"district_id"`
	StreetID   flexibleID `json:"street_id"`
}

var highlightReplacer = strings.NewReplacer("<strong>", "", "</strong>", "")

// ParseAutosuggest maps the best autosuggest match to a region, an empty
// suggestion list maps to the zero region.
func ParseAutosuggest(body []byte) (Region, error) {
	var suggestions []suggestion
	err := json.Unmarshal(body, &suggestions)
	if err != nil {
		return Region{}, fmt.Errorf("decode autosuggest: %w", err)
	}
	if len(suggestions) == 0 {
		return Region{}, nil
	}

	best := suggestions[0]
	parts := strings.Split(highlightReplacer.Replace(best.Text), ", ")
	cityToken := func(name string) string {
		return fmt.Sprintf("%s_%s", textutil.Slug(name), best.CityID)
	}

	switch best.Level {
	case levelCity:
		return Region{City: cityToken(parts[0])}, nil
	case levelDistrict:
		if len(parts) < 2 {
			return Region{}, fmt.Errorf("district suggestion %q has no city", best.Text)
		}
		return Region{City: cityToken(parts[1]), DistrictID: string(best.DistrictID)}, nil
	case levelRegion:
		return Region{Voivodeship: textutil.Slug(parts[0])}, nil
	case levelStreet:
		return Region{City: cityToken(parts[0]), StreetID: string(best.StreetID)}, nil
	}
	return Region{}, nil
}

// Regions resolves free text place names into structured regions.
type Regions struct {
	fetch   Fetcher
	baseUrl string
	tel     telemetry.API
}

func NewRegions(fetch Fetcher, baseUrl string, tel telemetry.API) Regions {
	assert.NotNil(fetch)
	assert.NotEmptyStr(baseUrl)
	assert.NotNil(tel)
	return Regions{fetch: fetch, baseUrl: baseUrl, tel: tel}
}

// Resolve returns `override` untouched when any of it is set, otherwise
// the name is looked up through the autosuggest endpoint.
func (r Regions) Resolve(ctx context.Context, name string, override Region) (Region, error) {
	if !override.IsZero() {
		return override, nil
	}
	if name == "" {
		return Region{}, nil
	}

	endpoint := autosuggestURL(r.baseUrl, name)
	r.tel.ReportDebug(report_regions_resolve, endpoint)

	page, err := r.fetch.Get(ctx, endpoint)
	if err != nil {
		r.tel.ReportBroken(report_regions_resolve, fmt.Errorf("fetch: %w", err), name)
		return Region{}, err
	}
	region, err := ParseAutosuggest(page.Body)
	if err != nil {
		r.tel.ReportBroken(report_regions_resolve, err, name)
		return Region{}, err
	}
	if region.IsZero() {
		r.tel.ReportWarning(report_regions_resolve, "no region matched", name)
	}
	return region, nil
}
