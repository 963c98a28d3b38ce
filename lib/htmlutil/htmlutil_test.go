package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestSelectionText(t *testing.T) {
	doc := parse(t, "<ul class=\"sub-list\">\n<li><strong>kaucja:</strong> 800 zł</li>\n<li>b</li>\n</ul>")
	require.Equal(t, "\nkaucja: 800 zł\nb\n", SelectionText(doc.Find(".sub-list")))
	require.Equal(t, "", SelectionText(doc.Find(".missing")))
}

func TestGetText(t *testing.T) {
	doc := parse(t, "<div class=\"text-details\"><p>Data dodania: 12.03.2019</p>\n<p>Nr oferty w Otodom: 1</p></div>")
	require.Equal(t, "Data dodania: 12.03.2019\nNr oferty w Otodom: 1", GetText(doc.Find(".text-details").Nodes[0]))
	require.Equal(t, "", GetText(nil))
}

func TestLines(t *testing.T) {
	doc := parse(t, "<ul class=\"dotted-list\">\n  <li>piwnica</li>\n\n  <li> oddzielna kuchnia </li>\n</ul>")
	require.Equal(t, []string{"piwnica", "oddzielna kuchnia"}, Lines(doc.Find(".dotted-list")))
	require.Equal(t, []string{}, Lines(doc.Find(".missing")))
}
