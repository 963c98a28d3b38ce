package otodom

import (
	"context"
	"otodom-scraper/internal/components/telemetry"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAutosuggest(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		expect Region
	}{
		{
			name:   "city",
			body:   `[{"level":"CITY","text":"<strong>Gdańsk</strong>, pomorskie","city_id":40}]`,
			expect: Region{City: "gdansk_40"},
		},
		{
			name:   "district",
			body:   `[{"level":"DISTRICT","text":"<strong>Oliwa</strong>, Gdańsk, pomorskie","city_id":"40","district_id":51316}]`,
			expect: Region{City: "gdansk_40", DistrictID: "51316"},
		},
		{
			name:   "region",
			body:   `[{"level":"REGION","text":"<strong>Pomorskie</strong>"}]`,
			expect: Region{Voivodeship: "pomorskie"},
		},
		{
			name:   "street",
			body:   `[{"level":"STREET","text":"Nowa Wieś, ul. <strong>Leśna</strong>","city_id":1001,"street_id":"2002"}]`,
			expect: Region{City: "nowa-wies_1001", StreetID: "2002"},
		},
		{
			name:   "best match wins",
			body:   `[{"level":"CITY","text":"Sopot","city_id":208},{"level":"CITY","text":"Gdynia","city_id":12}]`,
			expect: Region{City: "sopot_208"},
		},
		{
			name:   "no match",
			body:   `[]`,
			expect: Region{},
		},
		{
			name:   "unknown level",
			body:   `[{"level":"COUNTRY","text":"Polska"}]`,
			expect: Region{},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			res, err := ParseAutosuggest([]byte(test.body))
			require.NoError(t, err)
			require.Equal(t, test.expect, res)
		})
	}

	_, err := ParseAutosuggest([]byte(`{"broken":`))
	require.Error(t, err)
	_, err = ParseAutosuggest([]byte(`[{"level":"DISTRICT","text":"Oliwa","district_id":1}]`))
	require.Error(t, err)
}

func TestRegionsResolve(t *testing.T) {
	ctx := context.Background()
	fetch := newFakeFetcher()
	fetch.pages[autosuggestURL(DefaultBaseUrl, "Sopot")] = `[{"level":"CITY","text":"<strong>Sopot</strong>, pomorskie","city_id":208}]`
	fetch.pages[autosuggestURL(DefaultBaseUrl, "Atlantyda")] = `[]`
	tel := &telemetry.Recorder{}
	regions := NewRegions(fetch, DefaultBaseUrl, tel)

	override := Region{City: "gdynia_12", StreetID: "5"}
	res, err := regions.Resolve(ctx, "Sopot", override)
	require.NoError(t, err)
	require.Equal(t, override, res)
	require.Empty(t, fetch.requests)

	res, err = regions.Resolve(ctx, "", Region{})
	require.NoError(t, err)
	require.Equal(t, Region{}, res)
	require.Empty(t, fetch.requests)

	res, err = regions.Resolve(ctx, "Sopot", Region{})
	require.NoError(t, err)
	require.Equal(t, Region{City: "sopot_208"}, res)
	require.Equal(t, []string{"GET https://www.otodom.pl/ajax/geo6/autosuggest/?data=Sopot"}, fetch.requests)

	res, err = regions.Resolve(ctx, "Atlantyda", Region{})
	require.NoError(t, err)
	require.True(t, res.IsZero())
	require.True(t, tel.Has(telemetry.KindWarning, report_regions_resolve))

	_, err = regions.Resolve(ctx, "Nigdzie", Region{})
	require.True(t, IsNotFound(err))
	require.True(t, tel.Has(telemetry.KindBroken, report_regions_resolve))
}
