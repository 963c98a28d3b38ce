package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	testCases := []struct {
		text   string
		lower  bool
		spaces string
		expect string
	}{
		{text: "ala MA KoTa", lower: true, spaces: "-", expect: "ala-ma-kota"},
		{text: "Gdańsk", lower: true, spaces: "-", expect: "gdansk"},
		{text: "Zielona Góra", lower: false, spaces: "", expect: "ZielonaGora"},
		{text: "ŁÓDŹ", lower: true, spaces: "-", expect: "lodz"},
		{text: "Bielsko-Biała", lower: true, spaces: "-", expect: "bielsko-biala"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expect, NormalizeText(test.text, test.lower, test.spaces), test.text)
	}
	require.Equal(t, "nowy-sacz", Slug("Nowy Sącz"))
}

func TestReplaceAll(t *testing.T) {
	res := ReplaceAll("+48\u00a0600-100 200", []string{"\u00a0", " ", "-", "+48"}, "")
	require.Equal(t, "600100200", res)
}

func TestNonEmptyLines(t *testing.T) {
	res := NonEmptyLines("\n  winda \n\n\tbalkon\n   \n")
	require.Equal(t, []string{"winda", "balkon"}, res)
	require.Equal(t, []string{}, NonEmptyLines(""))
}

func TestCollapseSpaces(t *testing.T) {
	require.Equal(t, "a b c", CollapseSpaces("  a \n b\t\tc "))
}
