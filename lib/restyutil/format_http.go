package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"otodom-scraper/lib/textutil"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// dumpName builds a sortable file name for an exchange,
// ex. "0003-POST-ajax-misc-contact-phone-1".
func dumpName(id uint64, method, rawUrl string) string {
	path := ""
	parsed, err := url.Parse(rawUrl)
	if err == nil {
		path = strings.Trim(parsed.Path, "/")
	}
	slug := strings.Trim(textutil.Slug(strings.ReplaceAll(path, "/", " ")), "-")
	if slug == "" {
		slug = "root"
	}
	if len(slug) > 80 {
		slug = slug[:80]
	}
	return fmt.Sprintf("%04d-%s-%s", id, method, slug)
}

func writeHeaders(sb *strings.Builder, headers http.Header) {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range headers[k] {
			fmt.Fprintf(sb, "%s: %s\n", k, v)
		}
	}
}

func requestBody(req *http.Request) string {
	if req == nil || req.GetBody == nil {
		return ""
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Sprintf("<failed to get body: %s>", err)
	}
	read, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("<failed to read body: %s>", err)
	}
	return string(read)
}

// formatExchange renders a request and its response roughly the way they
// went over the wire, with a trailer noting how long the exchange took.
func formatExchange(res *resty.Response) string {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%s %s\n", res.Request.Method, res.Request.URL)
	if res.Request.RawRequest != nil {
		writeHeaders(sb, res.Request.RawRequest.Header)
	}
	sb.WriteString("\n")
	sb.WriteString(requestBody(res.Request.RawRequest))

	fmt.Fprintf(sb, "\n\n%s\n", res.Status())
	if res.RawResponse != nil {
		location, err := res.RawResponse.Location()
		if err == nil {
			fmt.Fprintf(sb, "# redirected to %s\n", location)
		}
	}
	writeHeaders(sb, res.Header())
	sb.WriteString("\n")
	sb.Write(res.Body())

	fmt.Fprintf(sb, "\n\n# took %s\n", res.Time())
	return sb.String()
}
