package commands

import (
	"os"
	"otodom-scraper/internal/scrapers/otodom"
	"otodom-scraper/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	offerId     *string
	offerPoster *string
)

func init() {
	offerId = offerCmd.Flags().String("offer-id", "", "The listing id as found on the result page, enables phone number lookup.")
	offerPoster = offerCmd.Flags().String("poster", "", "The poster label as found on the result page.")
	rootCmd.AddCommand(offerCmd)
}

var offerCmd = &cobra.Command{
	Use:   "offer <url> [--offer-id id] [--poster label]",
	Short: "Extracts a single listing.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustScraper()
		defer s.Close()

		var summary *otodom.ListingSummary
		if *offerId != "" {
			summary = &otodom.ListingSummary{
				DetailURL: args[0],
				ListingID: *offerId,
				Poster:    *offerPoster,
			}
		}

		record, err := s.extractor.Extract(cmd.Context(), args[0], summary)
		if err != nil {
			serviceutil.Fatal("failed to extract listing", err)
		}
		err = writeJSON(os.Stdout, record)
		if err != nil {
			serviceutil.Fatal("failed to write listing", err)
		}
	},
}
