package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	q, err := parseQuery([]string{"wynajem"}, nil)
	require.NoError(t, err)
	require.Equal(t, "wynajem", q.MainCategory)
	require.Equal(t, "", q.DetailCategory)
	require.Equal(t, "", q.Region)

	q, err = parseQuery([]string{"sprzedaz", "mieszkanie", "Gdańsk"}, []string{
		"[filter_float_price:to]=500000",
		"[filter_enum_rooms_num][]=2",
		"[filter_enum_rooms_num][]=3",
		"building_type=blok",
	})
	require.NoError(t, err)
	require.Equal(t, "mieszkanie", q.DetailCategory)
	require.Equal(t, "Gdańsk", q.Region)
	require.Equal(t, 500000.0, *q.Filters.PriceTo)
	require.Equal(t, []string{"2", "3"}, q.Filters.Rooms)
	require.Equal(t, "blok", q.Filters.BuildingType)

	_, err = parseQuery([]string{"wynajem"}, []string{"broken"})
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "https://www.otodom.pl", cfg.BaseUrl)
	require.Equal(t, 72, cfg.AdsPerPage)
	require.Equal(t, "Europe/Warsaw", cfg.Timezone)
	require.Equal(t, 4096, cfg.Cache.MaxEntries)
	require.Equal(t, "", cfg.Cache.Dir)
}
