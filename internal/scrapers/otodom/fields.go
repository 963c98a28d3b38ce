package otodom

import (
	"otodom-scraper/lib/htmlutil"
	"otodom-scraper/lib/textutil"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// the floor block renders the ground floor as a word
const groundFloor = "parter"

// key of the apartment detail holding the move in date
const availableFromKey = "Dostępne od"

// offer detail keys containing this word hold DD.MM.YYYY dates
const offerDateKeyword = "Data"

// ParseTitle returns the og:title of the page.
func ParseTitle(doc *goquery.Document) (string, error) {
	title, ok := selectTitle.value(doc.Selection)
	if !ok {
		return "", missingElement("og:title")
	}
	return title, nil
}

// ParseFacebookDescription returns the description meta tag used as the
// default share message.
func ParseFacebookDescription(doc *goquery.Document) (string, error) {
	description, ok := selectFacebookDescription.value(doc.Selection)
	if !ok {
		return "", missingElement("description meta")
	}
	return description, nil
}

func ParseAddress(doc *goquery.Document) string {
	address, _ := selectAddress.value(doc.Selection)
	return strings.TrimSpace(address)
}

func ParsePosterName(doc *goquery.Document) string {
	name, _ := selectPosterName.value(doc.Selection)
	return strings.TrimSpace(name)
}

func ParseDescription(doc *goquery.Document) string {
	description, _ := selectDescription.value(doc.Selection)
	description = textutil.ReplaceAll(description, []string{"\u00a0", "\n"}, " ")
	return strings.TrimSpace(description)
}

func ParsePhotoLinks(doc *goquery.Document) []string {
	return selectPhotos.values(doc.Selection)
}

func ParseVideoLink(doc *goquery.Document) string {
	link, _ := selectVideo.value(doc.Selection)
	return link
}

// ParseWalkaroundLink returns the href of the element following the
// "wirtualny spacer:" label.
func ParseWalkaroundLink(doc *goquery.Document) string {
	label, ok := selectWalkaroundLabel.first(doc.Selection)
	if !ok {
		return ""
	}
	return label.Next().AttrOr("href", "")
}

func parseFloat(value string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInt(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseCoordinates reads the latitude and longitude micro-data, if either
// is missing or malformed neither is returned.
func ParseCoordinates(doc *goquery.Document) Coordinates {
	rawLatitude, ok := selectLatitude.value(doc.Selection)
	if !ok {
		return Coordinates{}
	}
	rawLongitude, ok := selectLongitude.value(doc.Selection)
	if !ok {
		return Coordinates{}
	}
	latitude, ok := parseFloat(rawLatitude)
	if !ok {
		return Coordinates{}
	}
	longitude, ok := parseFloat(rawLongitude)
	if !ok {
		return Coordinates{}
	}
	return Coordinates{Latitude: &latitude, Longitude: &longitude}
}

// ParseFloor returns the floor the apartment is on, "0" for the ground
// floor and "" when the page has no floor block.
func ParseFloor(doc *goquery.Document) string {
	floor, _ := selectFloor.value(doc.Selection)
	floor = strings.TrimSpace(floor)
	if floor == groundFloor {
		return "0"
	}
	return floor
}

var totalFloorsRegex = regexp.MustCompile(`[\p{L}\p{N}_]+\s(\d+)`)

// ParseTotalFloors returns the number of floors of the building, or
// `fallback` when the floor block does not mention it.
func ParseTotalFloors(doc *goquery.Document, fallback string) string {
	text, ok := selectTotalFloors.value(doc.Selection)
	if !ok {
		return fallback
	}
	groups := totalFloorsRegex.FindStringSubmatch(text)
	if len(groups) < 2 {
		return fallback
	}
	return groups[1]
}

func splitPair(line string) DetailPair {
	key, value, _ := strings.Cut(line, ": ")
	return DetailPair{
		Key:  strings.TrimSpace(key),
		Text: strings.TrimSpace(value),
	}
}

// ParseApartmentDetails splits the apartment detail block into pairs, the
// move in date is converted to epoch seconds.
func ParseApartmentDetails(doc *goquery.Document, loc *time.Location) []DetailPair {
	block, ok := selectApartmentDetails.first(doc.Selection)
	if !ok {
		return []DetailPair{}
	}

	pairs := []DetailPair{}
	for _, line := range htmlutil.Lines(block) {
		pair := splitPair(line)
		if isApartmentDateKey(pair.Key) && pair.Text != "" {
			ts, err := ParseMonthNameDate(pair.Text, loc)
			if err == nil {
				pair.Timestamp = &ts
				pair.Text = ""
			}
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// ParseOfferDetails splits the offer detail block into pairs. Date pairs
// are converted to epoch seconds and moved after every other pair.
func ParseOfferDetails(doc *goquery.Document, now time.Time) OfferDetails {
	block, ok := selectOfferDetails.first(doc.Selection)
	if !ok {
		return OfferDetails{}
	}

	plain := []DetailPair{}
	dates := []DetailPair{}
	for _, line := range htmlutil.Lines(block) {
		pair := splitPair(line)
		if !isOfferDateKey(pair.Key) {
			plain = append(plain, pair)
			continue
		}
		ts, err := ParseNumericDate(pair.Text, now)
		if err == nil {
			pair.Timestamp = &ts
			pair.Text = ""
		}
		dates = append(dates, pair)
	}

	return OfferDetails{
		Present: true,
		Pairs:   append(plain, dates...),
	}
}

func isApartmentDateKey(key string) bool {
	return key == availableFromKey
}

func isOfferDateKey(key string) bool {
	return strings.Contains(key, offerDateKeyword)
}

// UnparsedDates returns the detail pairs of a record that should hold a
// date but kept their raw text, ex. "Dostępne od: od zaraz".
func UnparsedDates(record ListingRecord) []DetailPair {
	out := []DetailPair{}
	unparsed := func(pair DetailPair, isDate func(string) bool) {
		if isDate(pair.Key) && pair.Timestamp == nil && pair.Text != "" {
			out = append(out, pair)
		}
	}
	if record.Apartment != nil {
		for _, pair := range record.Apartment.ApartmentDetails {
			unparsed(pair, isApartmentDateKey)
		}
	}
	for _, pair := range record.OfferDetails.Pairs {
		unparsed(pair, isOfferDateKey)
	}
	return out
}

// ParseAdditionalAssets returns every amenity token of the page.
func ParseAdditionalAssets(doc *goquery.Document) []string {
	assets := []string{}
	selectAssets.all(doc.Selection).Each(func(_ int, group *goquery.Selection) {
		assets = append(assets, htmlutil.Lines(group)...)
	})
	return assets
}
