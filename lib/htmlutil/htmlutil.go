package htmlutil

import (
	"otodom-scraper/lib/textutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under node in document order.
// Unlike goquery's Text it keeps the source newlines, which otodom uses to
// separate detail rows.
func GetText(node *html.Node) string {
	var sb strings.Builder
	walk(node, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}

// walk calls visit on node and its descendants depth first.
func walk(node *html.Node, visit func(*html.Node)) {
	if node == nil {
		return
	}
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

// SelectionText is GetText over the first node of a selection, an empty
// selection returns "".
func SelectionText(sel *goquery.Selection) string {
	if sel == nil || len(sel.Nodes) == 0 {
		return ""
	}
	return GetText(sel.Nodes[0])
}

// Lines returns the trimmed non blank text lines of the first node of sel.
func Lines(sel *goquery.Selection) []string {
	return textutil.NonEmptyLines(SelectionText(sel))
}
