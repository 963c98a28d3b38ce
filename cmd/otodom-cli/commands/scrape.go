package commands

import (
	"log/slog"
	"os"
	"otodom-scraper/lib/serviceutil"
	"time"

	"github.com/spf13/cobra"
)

var (
	scrapeFilters *[]string
	scrapeLimit   *int
)

func init() {
	scrapeFilters = addFilterFlag(scrapeCmd)
	scrapeLimit = scrapeCmd.Flags().Int("limit", 0, "Extract at most this many listings, 0 extracts all of them.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape " + queryUsage + " [--filter key=value]... [--limit n]",
	Short: "Walks a search and extracts every listing found, one json record per line.",
	Args:  queryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := parseQuery(args, *scrapeFilters)
		if err != nil {
			serviceutil.Fatal("invalid query", err)
		}
		s := mustScraper()
		defer s.Close()

		ctx := cmd.Context()
		t1 := time.Now()

		summaries, err := s.walker.Walk(ctx, q)
		if err != nil {
			serviceutil.Fatal("failed to walk search results", err)
		}
		if *scrapeLimit > 0 && len(summaries) > *scrapeLimit {
			summaries = summaries[:*scrapeLimit]
		}
		slog.Info("found listings", "count", len(summaries))

		failed := 0
		for _, summary := range summaries {
			if ctx.Err() != nil {
				break
			}
			record, err := s.extractor.Extract(ctx, summary.DetailURL, &summary)
			if err != nil {
				failed++
				slog.Warn("skipping listing", "url", summary.DetailURL, "err", err)
				continue
			}
			err = writeJSONLine(os.Stdout, record)
			if err != nil {
				serviceutil.Fatal("failed to write listing", err)
			}
		}

		slog.Info(
			"scraping done",
			"listings", len(summaries),
			"failed", failed,
			"seconds", time.Since(t1).Seconds(),
		)
	},
}
