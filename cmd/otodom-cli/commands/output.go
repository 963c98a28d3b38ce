package commands

import (
	"encoding/json"
	"io"
	"otodom-scraper/internal/scrapers/otodom"

	"github.com/jedib0t/go-pretty/v6/table"
)

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// writeJSONLine writes value as a single line, used for record streams.
func writeJSONLine(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}

func writeSummaryTable(out io.Writer, summaries []otodom.ListingSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Offer ID", "Poster", "URL"})
	for i, summary := range summaries {
		t.AppendRow(table.Row{i + 1, summary.ListingID, summary.Poster, summary.DetailURL})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(summaries)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
