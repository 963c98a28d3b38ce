package commands

import (
	"bytes"
	"otodom-scraper/internal/scrapers/otodom"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteSummaryTable(t *testing.T) {
	var out bytes.Buffer
	writeSummaryTable(&out, []otodom.ListingSummary{
		{DetailURL: "https://www.otodom.pl/oferta/a-IDabc.html", ListingID: "abc", Poster: "Biuro"},
	})

	rendered := out.String()
	require.True(t, strings.Contains(rendered, "https://www.otodom.pl/oferta/a-IDabc.html"))
	require.True(t, strings.Contains(rendered, "Biuro"))
	require.True(t, strings.Contains(rendered, "╭"))
}

func TestWriteJSONLine(t *testing.T) {
	var out bytes.Buffer
	err := writeJSONLine(&out, otodom.ListingSummary{DetailURL: "https://www.otodom.pl/?a=1&b=2", ListingID: "x"})
	require.NoError(t, err)
	require.Equal(t, `{"detail_url":"https://www.otodom.pl/?a=1&b=2","offer_id":"x","poster":""}`+"\n", out.String())
}
