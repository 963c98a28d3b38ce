package commands

import (
	"fmt"
	"otodom-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

var pagesFilters *[]string

func init() {
	pagesFilters = addFilterFlag(pagesCmd)
	rootCmd.AddCommand(pagesCmd)
}

var pagesCmd = &cobra.Command{
	Use:   "pages " + queryUsage + " [--filter key=value]...",
	Short: "Prints the number of result pages of a search, 0 when the search is invalid.",
	Args:  queryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := parseQuery(args, *pagesFilters)
		if err != nil {
			serviceutil.Fatal("invalid query", err)
		}
		s := mustScraper()
		defer s.Close()

		count, err := s.walker.PageCount(cmd.Context(), q)
		if err != nil {
			serviceutil.Fatal("failed to count result pages", err)
		}
		fmt.Println(count)
	},
}
