package otodom

import (
	"encoding/json"
	"net/http"
	"otodom-scraper/lib/textutil"
	"regexp"
	"strconv"
	"strings"
)

// CookieFrom returns the first name=value pair of the Set-Cookie header,
// "" when the response sets no cookie.
func CookieFrom(header http.Header) string {
	raw := header.Get("Set-Cookie")
	if raw == "" {
		return ""
	}
	cookie, _, _ := strings.Cut(raw, ";")
	return cookie
}

var csrfTokenRegex = regexp.MustCompile(`csrfToken\s+=(?:\\|\s)+'(\w+)`)

// ParseCSRFToken finds the csrf token assigned in the page scripts, ""
// when there is none.
func ParseCSRFToken(body []byte) string {
	groups := csrfTokenRegex.FindSubmatch(body)
	if len(groups) < 2 {
		return ""
	}
	return string(groups[1])
}

var ninjaPVRegex = regexp.MustCompile(`window\.ninjaPV\s=\s(\{.*?\})`)

// NinjaPV is the analytics object embedded in every detail page, its
// values take precedence over anything rendered in the markup.
type NinjaPV map[string]any

// ParseNinjaPV extracts the analytics object from the raw page body.
func ParseNinjaPV(body []byte) (NinjaPV, error) {
	groups := ninjaPVRegex.FindSubmatch(body)
	if len(groups) < 2 {
		return nil, missingElement("ninjaPV")
	}

	var out NinjaPV
	err := json.Unmarshal(groups[1], &out)
	if err == nil {
		return out, nil
	}

	// some pages embed the object inside an escaped string
	unquoted, unquoteErr := strconv.Unquote(`"` + string(groups[1]) + `"`)
	if unquoteErr != nil {
		return nil, err
	}
	err = json.Unmarshal([]byte(unquoted), &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// String returns the value under key as text, "" if it is absent.
func (n NinjaPV) String(key string) string {
	switch value := n[key].(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// Float returns the value under key as a number, nil if it is absent or
// not numeric.
func (n NinjaPV) Float(key string) *float64 {
	switch value := n[key].(type) {
	case float64:
		return &value
	case string:
		parsed, ok := parseFloat(value)
		if !ok {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// Int is Float for whole numbers.
func (n NinjaPV) Int(key string) *int {
	switch value := n[key].(type) {
	case float64:
		if value != float64(int(value)) {
			return nil
		}
		i := int(value)
		return &i
	case string:
		parsed, ok := parseInt(value)
		if !ok {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

var phoneNoise = []string{"\u00a0", " ", "-", "+48"}

// CleanPhoneNumbers strips separators and the country code from the raw
// numbers, entries holding several numbers joined by "." are split.
func CleanPhoneNumbers(raw []string) []string {
	out := []string{}
	for _, number := range raw {
		cleaned := textutil.ReplaceAll(number, phoneNoise, "")
		for _, part := range strings.Split(cleaned, ".") {
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
