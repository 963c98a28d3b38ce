package commands

import (
	"otodom-scraper/internal/scrapers/otodom"

	"github.com/spf13/cobra"
)

const queryUsage = "<main category> [detail category] [region]"

// queryArgs accepts the positional arguments shared by every search command.
var queryArgs = cobra.RangeArgs(1, 3)

func addFilterFlag(cmd *cobra.Command) *[]string {
	return cmd.Flags().StringArrayP("filter", "f", nil, "A search filter as key=value, ex. [filter_float_price:to]=2500. Can be repeated.")
}

func parseQuery(args []string, filters []string) (otodom.Query, error) {
	q := otodom.Query{MainCategory: args[0]}
	if len(args) > 1 {
		q.DetailCategory = args[1]
	}
	if len(args) > 2 {
		q.Region = args[2]
	}
	for _, pair := range filters {
		err := q.Filters.SetPair(pair)
		if err != nil {
			return otodom.Query{}, err
		}
	}
	return q, nil
}
