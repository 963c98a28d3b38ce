package otodom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"otodom-scraper/internal/components/assert"
	"otodom-scraper/internal/components/chrono"
	"otodom-scraper/internal/components/telemetry"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_extractor_extract       = "extractor.extract"
	report_extractor_phone_numbers = "extractor.phone-numbers"
)

// Extractor builds listing records out of detail pages.
type Extractor struct {
	fetch Fetcher
	clock chrono.API
	opts  Options
	tel   telemetry.API
}

func NewExtractor(fetch Fetcher, clock chrono.API, opts Options, tel telemetry.API) Extractor {
	assert.NotNil(fetch)
	assert.NotNil(clock)
	assert.NotNil(tel)

	return Extractor{
		fetch: fetch,
		clock: clock,
		opts:  opts.withDefaults(),
		tel:   tel,
	}
}

// Extract fetches and parses a detail page. When `summary` is given the
// session of the page is used to look up the poster's phone numbers.
func (e Extractor) Extract(ctx context.Context, detailUrl string, summary *ListingSummary) (ListingRecord, error) {
	e.tel.ReportDebug("fetch detail page", detailUrl)

	page, err := e.fetch.Get(ctx, detailUrl)
	if err != nil {
		e.tel.ReportBroken(report_extractor_extract, fmt.Errorf("fetch: %w", err), detailUrl)
		return ListingRecord{}, err
	}

	record, err := ParseListing(page.Body, e.clock)
	if err != nil {
		e.tel.ReportBroken(report_extractor_extract, fmt.Errorf("parse: %w", err), detailUrl)
		return ListingRecord{}, err
	}
	for _, pair := range UnparsedDates(record) {
		e.tel.ReportWarning(report_extractor_extract, "unparsable date", pair.Key, pair.Text, detailUrl)
	}
	if summary == nil {
		return record, nil
	}

	origin := *summary
	record.Meta = Meta{
		Cookie:    CookieFrom(page.Header),
		CSRFToken: ParseCSRFToken(page.Body),
		Context:   &origin,
	}
	record.PhoneNumbers, err = e.PhoneNumbers(ctx, summary.ListingID, record.Meta.Cookie, record.Meta.CSRFToken)
	if err != nil {
		return ListingRecord{}, err
	}
	return record, nil
}

type phoneResponse struct {
	Value json.RawMessage `json:"value"`
}

func decodePhoneValue(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}
	var numbers []string
	err := json.Unmarshal(raw, &numbers)
	if err == nil {
		return numbers, nil
	}
	var single string
	if json.Unmarshal(raw, &single) == nil {
		return []string{single}, nil
	}
	return nil, err
}

// PhoneNumbers asks the contact endpoint for the poster's phone numbers.
// A missing listing id or token and a listing the endpoint no longer knows
// all yield no numbers.
func (e Extractor) PhoneNumbers(ctx context.Context, listingId, cookie, csrfToken string) ([]string, error) {
	if listingId == "" {
		e.tel.ReportWarning(report_extractor_phone_numbers, "summary has no listing id")
		return []string{}, nil
	}
	if csrfToken == "" {
		e.tel.ReportWarning(report_extractor_phone_numbers, "page has no csrf token", listingId)
		return []string{}, nil
	}

	endpoint := phoneURL(e.opts.BaseUrl, listingId)
	page, err := e.fetch.PostForm(ctx, endpoint, "CSRFToken="+csrfToken, map[string]string{
		"cookie":       cookie,
		"content-type": "application/x-www-form-urlencoded",
	})
	if IsNotFound(err) {
		e.tel.ReportWarning(report_extractor_phone_numbers, "listing is gone", listingId)
		return []string{}, nil
	}
	if err != nil {
		e.tel.ReportBroken(report_extractor_phone_numbers, fmt.Errorf("fetch: %w", err), listingId)
		return nil, err
	}

	var res phoneResponse
	err = json.Unmarshal(page.Body, &res)
	if err != nil {
		e.tel.ReportBroken(report_extractor_phone_numbers, fmt.Errorf("decode: %w", err), listingId)
		return nil, err
	}
	numbers, err := decodePhoneValue(res.Value)
	if err != nil {
		e.tel.ReportBroken(report_extractor_phone_numbers, fmt.Errorf("decode value: %w", err), listingId)
		return nil, err
	}
	return CleanPhoneNumbers(numbers), nil
}

func nonZeroInt(n *int) bool {
	return n != nil && *n != 0
}

func toIntPtr(value string) *int {
	n, ok := parseInt(value)
	if !ok {
		return nil
	}
	return &n
}

// parseApartment collects the apartment fields, nil is returned when none
// of them (including the walkaround link) carries a value.
func parseApartment(doc *goquery.Document, ninja NinjaPV, walkaroundLink string, clock chrono.API) *Apartment {
	details := ParseApartmentDetails(doc, clock.Location())
	apartment := &Apartment{
		Surface:          ninja.Float("surface"),
		Rooms:            ninja.Int("rooms"),
		Floor:            toIntPtr(ParseFloor(doc)),
		TotalFloors:      toIntPtr(ParseTotalFloors(doc, "")),
		ApartmentDetails: details,
		AdditionalAssets: BuildAdditionalAssets(ParseAdditionalAssets(doc), details),
	}

	populated := walkaroundLink != "" ||
		len(apartment.ApartmentDetails) > 0 ||
		apartment.AdditionalAssets.Populated ||
		(apartment.Surface != nil && *apartment.Surface != 0) ||
		nonZeroInt(apartment.Rooms) ||
		nonZeroInt(apartment.Floor) ||
		nonZeroInt(apartment.TotalFloors)
	if !populated {
		return nil
	}
	return apartment
}

// ParseListing builds the record of a detail page body. Contact fields and
// session metadata are left empty.
func ParseListing(body []byte, clock chrono.API) (ListingRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ListingRecord{}, fmt.Errorf("parse document: %w", err)
	}

	ninja, err := ParseNinjaPV(body)
	if err != nil {
		return ListingRecord{}, err
	}
	title, err := ParseTitle(doc)
	if err != nil {
		return ListingRecord{}, err
	}
	facebookDescription, err := ParseFacebookDescription(doc)
	if err != nil {
		return ListingRecord{}, err
	}

	walkaroundLink := ParseWalkaroundLink(doc)
	return ListingRecord{
		Title:               title,
		Address:             ParseAddress(doc),
		PosterName:          ParsePosterName(doc),
		PosterType:          ninja.String("poster_type"),
		Price:               ninja.Float("ad_price"),
		Currency:            ninja.String("price_currency"),
		City:                ninja.String("city_name"),
		District:            ninja.String("district_name"),
		Voivodeship:         ninja.String("region_name"),
		Coordinates:         ParseCoordinates(doc),
		PhoneNumbers:        []string{},
		Description:         ParseDescription(doc),
		OfferDetails:        ParseOfferDetails(doc, clock.Now()),
		PhotoLinks:          ParsePhotoLinks(doc),
		VideoLink:           ParseVideoLink(doc),
		WalkaroundLink:      walkaroundLink,
		FacebookDescription: facebookDescription,
		Apartment:           parseApartment(doc, ninja, walkaroundLink, clock),
	}, nil
}
