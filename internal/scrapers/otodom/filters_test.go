package otodom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFiltersSet(t *testing.T) {
	var filters Filters
	require.NoError(t, filters.Set("[filter_float_price:to]", "1500,5"))
	require.NoError(t, filters.Set("[filter_enum_rooms_num][]", "1"))
	require.NoError(t, filters.Set("[filter_enum_rooms_num][]", "2"))
	require.NoError(t, filters.Set("[open_day]", "1"))
	require.NoError(t, filters.Set("[dist]", "15"))
	require.NoError(t, filters.Set("city", "sopot_208"))
	require.NoError(t, filters.Set("[district_id]", "51316"))
	require.NoError(t, filters.Set("building_type", "kamienica"))
	require.NoError(t, filters.Set("[private_business]", "private"))
	require.NoError(t, filters.SetPair("[custom]=a"))
	require.NoError(t, filters.SetPair("[custom]=b"))

	require.Equal(t, 1500.5, *filters.PriceTo)
	require.Equal(t, []string{"1", "2"}, filters.Rooms)
	require.True(t, *filters.OpenDay)
	require.Equal(t, 15, *filters.Distance)
	require.Equal(t, Region{City: "sopot_208", DistrictID: "51316"}, filters.Region)
	require.Equal(t, "kamienica", filters.BuildingType)
	require.Equal(t, "private", filters.PosterType)
	require.Equal(t, []RawFilter{{Key: "[custom]", Values: []string{"a", "b"}}}, filters.Extra)
}

func TestFiltersSetInvalid(t *testing.T) {
	var filters Filters
	require.Error(t, filters.Set("[dist]", "far"))
	require.Error(t, filters.Set("[filter_float_m:from]", "big"))
	require.Error(t, filters.Set("[photos]", "maybe"))
	require.Error(t, filters.SetPair("no-separator"))
	require.Error(t, filters.SetPair("=value"))
	require.Nil(t, filters.Distance)
	require.Nil(t, filters.AreaFrom)
	require.Nil(t, filters.Photos)
}

func TestFiltersQueryParams(t *testing.T) {
	yes := true
	no := false
	from := 0.0
	year := 1990
	filters := Filters{
		Region:              Region{City: "gdansk_40"},
		BuildingType:        "blok",
		DescriptionFragment: "blisko morza",
		PriceFrom:           &from,
		Market:              []string{"primary", "secondary"},
		BuildYearFrom:       &year,
		Photos:              &yes,
		Movie:               &no,
		Extra:               []RawFilter{{Key: "[custom]", Values: []string{"a b"}}},
	}

	rendered := []string{}
	for _, param := range filters.queryParams() {
		rendered = append(rendered, param.String())
	}
	require.Equal(t, []string{
		"search%5Bfilter_float_price%3Afrom%5D=0",
		"search%5Bfilter_enum_market%5D%5B%5D=primary",
		"search%5Bfilter_enum_market%5D%5B%5D=secondary",
		"search%5Bfilter_float_build_year%3Afrom%5D=1990",
		"search%5Bphotos%5D=1",
		"search%5Bmovie%5D=0",
		"search%5Bcustom%5D=a+b",
	}, rendered)
}
