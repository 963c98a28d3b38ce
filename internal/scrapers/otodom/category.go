package otodom

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"otodom-scraper/internal/components/assert"
	"otodom-scraper/internal/components/telemetry"
	"otodom-scraper/lib/textutil"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_walker_walk       = "walker.walk"
	report_walker_page_count = "walker.page-count"
	report_walker_page       = "walker.page"
)

// result items carrying one of these markers are paid placements
var promotedMarkers = []string{"promo_vip", "promo_top_ads"}

const DefaultBaseUrl = "https://www.otodom.pl"

const DefaultAdsPerPage = 72

var DefaultAllowedDomains = []string{
	"otodom.pl",
	"www.otodom.pl",
	"otomoto.pl",
	"www.otomoto.pl",
}

// Options are shared by the Walker and the Extractor.
type Options struct {
	BaseUrl        string
	AllowedDomains []string
	AdsPerPage     int
}

func DefaultOptions() Options {
	return Options{
		BaseUrl:        DefaultBaseUrl,
		AllowedDomains: DefaultAllowedDomains,
		AdsPerPage:     DefaultAdsPerPage,
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.BaseUrl == "" {
		o.BaseUrl = defaults.BaseUrl
	}
	o.BaseUrl = strings.TrimRight(o.BaseUrl, "/")
	if len(o.AllowedDomains) == 0 {
		o.AllowedDomains = defaults.AllowedDomains
	}
	if o.AdsPerPage <= 0 {
		o.AdsPerPage = defaults.AdsPerPage
	}
	return o
}

func allowedHost(rawUrl string, allowed []string) bool {
	parsed, err := url.Parse(rawUrl)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, domain := range allowed {
		if host == strings.ToLower(domain) {
			return true
		}
	}
	return false
}

// ParseCategoryOffer extracts the summary of a single result item, false
// is returned when the item has no link or links outside of `allowed`.
func ParseCategoryOffer(item *goquery.Selection, allowed []string) (ListingSummary, bool) {
	link, _ := selectItemLink.value(item)
	if link == "" || !allowedHost(link, allowed) {
		return ListingSummary{}, false
	}

	article := item
	if goquery.NodeName(item) != "article" {
		article, _ = selectItemArticle.first(item)
	}
	poster, _ := selectItemPoster.value(item)

	return ListingSummary{
		DetailURL: link,
		ListingID: article.AttrOr(selectItemArticle.attr, ""),
		Poster:    textutil.CollapseSpaces(poster),
	}, true
}

func promoted(item *goquery.Selection) bool {
	featured := item.AttrOr("data-featured-name", "")
	for _, marker := range promotedMarkers {
		if featured == marker {
			return true
		}
	}
	return false
}

// ParseCategoryContent extracts the summaries of every organic result item
// in document order.
func ParseCategoryContent(doc *goquery.Document, allowed []string) []ListingSummary {
	out := []ListingSummary{}
	selectResultItem.all(doc.Selection).Each(func(_ int, item *goquery.Selection) {
		if promoted(item) {
			return
		}
		summary, ok := ParseCategoryOffer(item, allowed)
		if ok {
			out = append(out, summary)
		}
	})
	return out
}

// ParsePageCount returns the highest result page index, 1 when the page
// has no pagination control. ok is false when the control exists but does
// not hold a positive number, the count is then 1 as well.
func ParsePageCount(doc *goquery.Document) (count int, ok bool) {
	text, found := selectCurrentPage.value(doc.Selection)
	if !found {
		return 1, true
	}
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || count < 1 {
		return 1, false
	}
	return count, true
}

func (w Walker) pageCount(doc *goquery.Document, id, endpoint string) int {
	count, ok := ParsePageCount(doc)
	if !ok {
		w.tel.ReportWarning(id, "malformed page count, walking the first page only", endpoint)
	}
	return count
}

// SearchSuccessful reports whether the result page matched the search.
func SearchSuccessful(doc *goquery.Document) bool {
	_, warned := selectInvalidWarning.first(doc.Selection)
	return !warned
}

// Walker walks through the result pages of a search.
type Walker struct {
	fetch   Fetcher
	regions Regions
	opts    Options
	tel     telemetry.API
}

func NewWalker(fetch Fetcher, opts Options, tel telemetry.API) Walker {
	assert.NotNil(fetch)
	assert.NotNil(tel)

	opts = opts.withDefaults()
	return Walker{
		fetch:   fetch,
		regions: NewRegions(fetch, opts.BaseUrl, tel),
		opts:    opts,
		tel:     tel,
	}
}

func (w Walker) fetchPage(ctx context.Context, q Query, region Region, page int) (*goquery.Document, string, error) {
	endpoint := SearchURL(w.opts.BaseUrl, q, region, w.opts.AdsPerPage, page)
	w.tel.ReportDebug("fetch result page", endpoint)

	res, err := w.fetch.Get(ctx, endpoint)
	if err != nil {
		return nil, endpoint, fmt.Errorf("fetch page %d: %w", page, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body))
	if err != nil {
		return nil, endpoint, fmt.Errorf("parse page %d: %w", page, err)
	}
	return doc, endpoint, nil
}

// Walk returns the summaries of every result page of the search, in page
// order. Only the first page is checked for the invalid search marker, an
// invalid search yields no summaries.
func (w Walker) Walk(ctx context.Context, q Query) ([]ListingSummary, error) {
	region, err := w.regions.Resolve(ctx, q.Region, q.Filters.Region)
	if err != nil {
		return nil, err
	}

	doc, endpoint, err := w.fetchPage(ctx, q, region, 1)
	if err != nil {
		w.tel.ReportBroken(report_walker_walk, err, endpoint)
		return nil, err
	}
	if !SearchSuccessful(doc) {
		w.tel.ReportWarning(report_walker_walk, "search for category was not successful", endpoint)
		return []ListingSummary{}, nil
	}

	summaries := ParseCategoryContent(doc, w.opts.AllowedDomains)
	pageCount := w.pageCount(doc, report_walker_walk, endpoint)
	w.tel.ReportCount(report_walker_page_count, int64(pageCount))

	for page := 2; page <= pageCount; page++ {
		doc, endpoint, err := w.fetchPage(ctx, q, region, page)
		if err != nil {
			w.tel.ReportBroken(report_walker_walk, err, endpoint)
			return nil, err
		}
		summaries = append(summaries, ParseCategoryContent(doc, w.opts.AllowedDomains)...)
	}

	w.tel.ReportCount(report_walker_walk, int64(len(summaries)))
	return summaries, nil
}

// PageCount returns the number of result pages of the search, 0 when the
// search is invalid.
func (w Walker) PageCount(ctx context.Context, q Query) (int, error) {
	region, err := w.regions.Resolve(ctx, q.Region, q.Filters.Region)
	if err != nil {
		return 0, err
	}

	doc, endpoint, err := w.fetchPage(ctx, q, region, 1)
	if err != nil {
		w.tel.ReportBroken(report_walker_page_count, err, endpoint)
		return 0, err
	}
	if !SearchSuccessful(doc) {
		w.tel.ReportWarning(report_walker_page_count, "search for category was not successful", endpoint)
		return 0, nil
	}
	return w.pageCount(doc, report_walker_page_count, endpoint), nil
}

// Page returns the summaries of a single result page.
func (w Walker) Page(ctx context.Context, q Query, page int) ([]ListingSummary, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be positive, got %d", page)
	}

	region, err := w.regions.Resolve(ctx, q.Region, q.Filters.Region)
	if err != nil {
		return nil, err
	}

	doc, endpoint, err := w.fetchPage(ctx, q, region, page)
	if err != nil {
		w.tel.ReportBroken(report_walker_page, err, endpoint)
		return nil, err
	}
	return ParseCategoryContent(doc, w.opts.AllowedDomains), nil
}
