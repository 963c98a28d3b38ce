package otodom

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// RawFilter is a filter the scraper does not know about, it is forwarded
// into the query verbatim.
type RawFilter struct {
	Key    string
	Values []string
}

// Filters are the optional refinements of a search. Nil and empty fields
// are left out of the query.
type Filters struct {
	// structured region, when any of it is set the region name of a query
	// is not looked up
	Region Region

	Distance          *int
	PriceFrom         *float64
	PriceTo           *float64
	PricePerMeterFrom *float64
	PricePerMeterTo   *float64
	Market            []string
	BuildingMaterial  []string
	AreaFrom          *float64
	AreaTo            *float64
	Rooms             []string
	// "private" or "business"
	PosterType         string
	OpenDay            *bool
	ExclusiveOffer     *bool
	RentToStudents     *bool
	FloorNo            []string
	BuildingFloorsFrom *int
	BuildingFloorsTo   *int
	Heating            []string
	BuildYearFrom      *int
	BuildYearTo        *int
	ExtrasTypes        []string
	MediaTypes         []string
	FreeFrom           string
	CreatedSince       *int
	ID                 string
	Photos             *bool
	Movie              *bool
	Walkaround3DView   *bool

	// path filters
	BuildingType        string
	DescriptionFragment string

	Extra []RawFilter
}

type filterField struct {
	key string
	// pointer to the field, one of **int, **float64, **bool, *string or *[]string
	field func(f *Filters) any
	// path and region filters are rendered outside of the query
	query bool
}

// keys in the order they are rendered into the query
var filterFields = []filterField{
	{key: "city", field: func(f *Filters) any { return &f.Region.City }},
	{key: "voivodeship", field: func(f *Filters) any { return &f.Region.Voivodeship }},
	{key: "[district_id]", field: func(f *Filters) any { return &f.Region.DistrictID }},
	{key: "[street_id]", field: func(f *Filters) any { return &f.Region.StreetID }},
	{key: "building_type", field: func(f *Filters) any { return &f.BuildingType }},
	{key: "description_fragment", field: func(f *Filters) any { return &f.DescriptionFragment }},

	{key: "[dist]", field: func(f *Filters) any { return &f.Distance }, query: true},
	{key: "[filter_float_price:from]", field: func(f *Filters) any { return &f.PriceFrom }, query: true},
	{key: "[filter_float_price:to]", field: func(f *Filters) any { return &f.PriceTo }, query: true},
	{key: "[filter_float_price_per_m:from]", field: func(f *Filters) any { return &f.PricePerMeterFrom }, query: true},
	{key: "[filter_float_price_per_m:to]", field: func(f *Filters) any { return &f.PricePerMeterTo }, query: true},
	{key: "[filter_enum_market][]", field: func(f *Filters) any { return &f.Market }, query: true},
	{key: "[filter_enum_building_material][]", field: func(f *Filters) any { return &f.BuildingMaterial }, query: true},
	{key: "[filter_float_m:from]", field: func(f *Filters) any { return &f.AreaFrom }, query: true},
	{key: "[filter_float_m:to]", field: func(f *Filters) any { return &f.AreaTo }, query: true},
	{key: "[filter_enum_rooms_num][]", field: func(f *Filters) any { return &f.Rooms }, query: true},
	{key: "[private_business]", field: func(f *Filters) any { return &f.PosterType }, query: true},
	{key: "[open_day]", field: func(f *Filters) any { return &f.OpenDay }, query: true},
	{key: "[exclusive_offer]", field: func(f *Filters) any { return &f.ExclusiveOffer }, query: true},
	{key: "[filter_enum_rent_to_students][]", field: func(f *Filters) any { return &f.RentToStudents }, query: true},
	{key: "[filter_enum_floor_no][]", field: func(f *Filters) any { return &f.FloorNo }, query: true},
	{key: "[filter_float_building_floors_num:from]", field: func(f *Filters) any { return &f.BuildingFloorsFrom }, query: true},
	{key: "[filter_float_building_floors_num:to]", field: func(f *Filters) any { return &f.BuildingFloorsTo }, query: true},
	{key: "[filter_enum_heating][]", field: func(f *Filters) any { return &f.Heating }, query: true},
	{key: "[filter_float_build_year:from]", field: func(f *Filters) any { return &f.BuildYearFrom }, query: true},
	{key: "[filter_float_build_year:to]", field: func(f *Filters) any { return &f.BuildYearTo }, query: true},
	{key: "[filter_enum_extras_types][]", field: func(f *Filters) any { return &f.ExtrasTypes }, query: true},
	{key: "[filter_enum_media_types][]", field: func(f *Filters) any { return &f.MediaTypes }, query: true},
	{key: "[free_from]", field: func(f *Filters) any { return &f.FreeFrom }, query: true},
	{key: "[created_since]", field: func(f *Filters) any { return &f.CreatedSince }, query: true},
	{key: "[id]", field: func(f *Filters) any { return &f.ID }, query: true},
	{key: "[photos]", field: func(f *Filters) any { return &f.Photos }, query: true},
	{key: "[movie]", field: func(f *Filters) any { return &f.Movie }, query: true},
	{key: "[walkaround_3dview]", field: func(f *Filters) any { return &f.Walkaround3DView }, query: true},
}

func lookupFilterField(key string) (filterField, bool) {
	for _, field := range filterFields {
		if field.key == key {
			return field, true
		}
	}
	return filterField{}, false
}

func parseFilterBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", value)
}

// Set assigns a filter from its textual form, list filters accumulate
// across calls. Unknown keys are kept as raw filters.
func (f *Filters) Set(key, value string) error {
	field, ok := lookupFilterField(key)
	if !ok {
		for i, raw := range f.Extra {
			if raw.Key == key {
				f.Extra[i].Values = append(f.Extra[i].Values, value)
				return nil
			}
		}
		f.Extra = append(f.Extra, RawFilter{Key: key, Values: []string{value}})
		return nil
	}

	switch ptr := field.field(f).(type) {
	case *string:
		*ptr = value
	case *[]string:
		*ptr = append(*ptr, value)
	case **int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("filter %s: %w", key, err)
		}
		*ptr = &n
	case **float64:
		n, ok := parseFloat(value)
		if !ok {
			return fmt.Errorf("filter %s: not a number: %q", key, value)
		}
		*ptr = &n
	case **bool:
		b, err := parseFilterBool(value)
		if err != nil {
			return fmt.Errorf("filter %s: %w", key, err)
		}
		*ptr = &b
	}
	return nil
}

// SetPair assigns a filter given as "key=value".
func (f *Filters) SetPair(pair string) error {
	key, value, ok := strings.Cut(pair, "=")
	if !ok || key == "" {
		return fmt.Errorf("filter %q: expected key=value", pair)
	}
	return f.Set(key, value)
}

type queryParam struct {
	key   string
	value string
}

func (p queryParam) String() string {
	return "search" + url.QueryEscape(p.key) + "=" + url.QueryEscape(p.value)
}

// queryParams renders the query filters in a stable order, list filters
// produce one parameter per element.
func (f *Filters) queryParams() []queryParam {
	out := []queryParam{}
	for _, field := range filterFields {
		if !field.query {
			continue
		}
		switch ptr := field.field(f).(type) {
		case *string:
			if *ptr != "" {
				out = append(out, queryParam{field.key, *ptr})
			}
		case *[]string:
			for _, value := range *ptr {
				out = append(out, queryParam{field.key, value})
			}
		case **int:
			if *ptr != nil {
				out = append(out, queryParam{field.key, strconv.Itoa(**ptr)})
			}
		case **float64:
			if *ptr != nil {
				out = append(out, queryParam{field.key, strconv.FormatFloat(**ptr, 'f', -1, 64)})
			}
		case **bool:
			if *ptr != nil {
				value := "0"
				if **ptr {
					value = "1"
				}
				out = append(out, queryParam{field.key, value})
			}
		}
	}
	for _, raw := range f.Extra {
		for _, value := range raw.Values {
			out = append(out, queryParam{raw.Key, value})
		}
	}
	return out
}
