package commands

import (
	"os"
	"otodom-scraper/internal/scrapers/otodom"
	"otodom-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	categoryFilters *[]string
	categoryPage    *int
	categoryTable   *bool
)

func init() {
	categoryFilters = addFilterFlag(categoryCmd)
	categoryPage = categoryCmd.Flags().Int("page", 0, "Only fetch this result page, 0 walks every page.")
	categoryTable = categoryCmd.Flags().Bool("table", false, "Print a table instead of json.")
	rootCmd.AddCommand(categoryCmd)
}

var categoryCmd = &cobra.Command{
	Use:   "category " + queryUsage + " [--filter key=value]... [--page n] [--table]",
	Short: "Lists the listings found by a search.",
	Args:  queryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := parseQuery(args, *categoryFilters)
		if err != nil {
			serviceutil.Fatal("invalid query", err)
		}
		s := mustScraper()
		defer s.Close()

		var summaries []otodom.ListingSummary
		if *categoryPage > 0 {
			summaries, err = s.walker.Page(cmd.Context(), q, *categoryPage)
		} else {
			summaries, err = s.walker.Walk(cmd.Context(), q)
		}
		if err != nil {
			serviceutil.Fatal("failed to walk search results", err)
		}

		if *categoryTable {
			writeSummaryTable(os.Stdout, summaries)
			return
		}
		err = writeJSON(os.Stdout, summaries)
		if err != nil {
			serviceutil.Fatal("failed to write summaries", err)
		}
	},
}
