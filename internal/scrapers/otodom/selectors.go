package otodom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fieldSelector locates the element holding a single field.
type fieldSelector struct {
	// tried in order, the first one that matches anything wins
	css []string
	// attribute carrying the value, empty means the text of the element
	attr string
	// when set, only elements whose trimmed text equals it match
	text string
}

func (f fieldSelector) all(root *goquery.Selection) *goquery.Selection {
	for _, css := range f.css {
		sel := root.Find(css)
		if f.text != "" {
			sel = sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
				return strings.TrimSpace(s.Text()) == f.text
			})
		}
		if sel.Length() > 0 {
			return sel
		}
	}
	return root.Slice(0, 0)
}

// first returns the first matching element.
func (f fieldSelector) first(root *goquery.Selection) (*goquery.Selection, bool) {
	sel := f.all(root).First()
	return sel, sel.Length() > 0
}

func (f fieldSelector) read(sel *goquery.Selection) (string, bool) {
	if f.attr == "" {
		return sel.Text(), true
	}
	return sel.Attr(f.attr)
}

// value returns the value of the first matching element.
func (f fieldSelector) value(root *goquery.Selection) (string, bool) {
	sel, ok := f.first(root)
	if !ok {
		return "", false
	}
	return f.read(sel)
}

// values returns the value of every matching element that has one.
func (f fieldSelector) values(root *goquery.Selection) []string {
	out := []string{}
	f.all(root).Each(func(_ int, sel *goquery.Selection) {
		value, ok := f.read(sel)
		if ok {
			out = append(out, value)
		}
	})
	return out
}

// result pages
var (
	selectResultItem     = fieldSelector{css: []string{".offer-item"}}
	selectItemLink       = fieldSelector{css: []string{"a"}, attr: "href"}
	selectItemArticle    = fieldSelector{css: []string{"article"}, attr: "data-item-id"}
	selectItemPoster     = fieldSelector{css: []string{".offer-item-details-bottom .pull-right"}}
	selectCurrentPage    = fieldSelector{css: []string{".current"}}
	selectInvalidWarning = fieldSelector{css: []string{".search-location-extended-warning"}}
)

// detail pages
var (
	selectTitle               = fieldSelector{css: []string{`meta[property="og:title"]`}, attr: "content"}
	selectFacebookDescription = fieldSelector{css: []string{`[name="description"]`}, attr: "content"}
	selectAddress             = fieldSelector{css: []string{".address-text"}}
	selectPosterName          = fieldSelector{css: []string{".box-person-name", ".seller-box__seller-name"}}
	selectDescription         = fieldSelector{css: []string{`[itemprop="description"]`, ".offer-description"}}
	selectPhotos              = fieldSelector{css: []string{".gallery-box-thumb-item"}, attr: "href"}
	selectVideo               = fieldSelector{css: []string{".section-offer-video iframe"}, attr: "src"}
	selectWalkaroundLabel     = fieldSelector{css: []string{"strong"}, text: "wirtualny spacer:"}
	selectLatitude            = fieldSelector{css: []string{`[itemprop="latitude"]`}, attr: "content"}
	selectLongitude           = fieldSelector{css: []string{`[itemprop="longitude"]`}, attr: "content"}
	selectFloor               = fieldSelector{css: []string{".param_floor_no strong"}}
	selectTotalFloors         = fieldSelector{css: []string{".param_floor_no span"}}
	selectApartmentDetails    = fieldSelector{css: []string{".sub-list"}}
	selectOfferDetails        = fieldSelector{css: []string{".text-details"}}
	selectAssets              = fieldSelector{css: []string{".dotted-list"}}
)
