package otodom

import (
	"fmt"
	"net/url"
	"otodom-scraper/lib/textutil"
	"strings"
)

// Query describes a search over the result pages.
type Query struct {
	// ex. "wynajem" or "sprzedaz"
	MainCategory string
	// ex. "mieszkanie", "" for any
	DetailCategory string
	// free text place name, ignored when Filters.Region is set
	Region  string
	Filters Filters
}

func autosuggestURL(baseUrl, name string) string {
	return fmt.Sprintf(
		"%s/ajax/geo6/autosuggest/?data=%s",
		baseUrl,
		url.QueryEscape(textutil.NormalizeText(name, false, "")),
	)
}

func phoneURL(baseUrl, listingId string) string {
	return fmt.Sprintf("%s/ajax/misc/contact/phone/%s/", baseUrl, url.PathEscape(listingId))
}

// SearchURL builds the url of a single result page.
func SearchURL(baseUrl string, q Query, region Region, adsPerPage, page int) string {
	var out strings.Builder
	out.WriteString(strings.Join([]string{
		baseUrl,
		q.MainCategory,
		q.DetailCategory,
		region.pathToken(),
	}, "/"))

	if q.Filters.BuildingType != "" {
		out.WriteString("/")
		out.WriteString(q.Filters.BuildingType)
	}
	if words := strings.Fields(q.Filters.DescriptionFragment); len(words) > 0 {
		out.WriteString("/q-")
		out.WriteString(strings.Join(words, "-"))
	}

	params := []string{
		fmt.Sprintf("?nrAdsPerPage=%d", adsPerPage),
		fmt.Sprintf("page=%d", page),
	}
	for _, param := range q.Filters.queryParams() {
		params = append(params, param.String())
	}
	if region.DistrictID != "" {
		params = append(params, queryParam{"[district_id]", region.DistrictID}.String())
	}
	if region.StreetID != "" {
		params = append(params, queryParam{"[street_id]", region.StreetID}.String())
	}
	out.WriteString(strings.Join(params, "&"))

	return out.String()
}
