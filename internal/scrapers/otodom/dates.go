package otodom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// polish month names are matched on their first three lowercase letters
var monthPrefixes = map[string]time.Month{
	"sty": time.January,
	"lut": time.February,
	"mar": time.March,
	"kwi": time.April,
	"maj": time.May,
	"cze": time.June,
	"lip": time.July,
	"sie": time.August,
	"wrz": time.September,
	"paź": time.October,
	"lis": time.November,
	"gru": time.December,
}

// relativeDateMarker appears in dates rendered as "more than two weeks ago".
const relativeDateMarker = "ponad"

func monthFromName(name string) (time.Month, bool) {
	runes := []rune(strings.ToLower(name))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	month, ok := monthPrefixes[string(runes)]
	return month, ok
}

func midnight(year int, month time.Month, day int, loc *time.Location) (int64, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("month out of range: %d", month)
	}
	if day < 1 || day > 31 {
		return 0, fmt.Errorf("day out of range: %d", day)
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if date.Day() != day {
		return 0, fmt.Errorf("day out of range: %d", day)
	}
	return date.Unix(), nil
}

// ParseMonthNameDate parses "DD <month name> YYYY" into the epoch seconds
// of that day's midnight in loc.
//
// ex. "5 Marca 2020"
func ParseMonthNameDate(value string, loc *time.Location) (int64, error) {
	parts := strings.Fields(value)
	if len(parts) != 3 {
		return 0, fmt.Errorf("parse date %q: expected 3 parts", value)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse date %q: day: %w", value, err)
	}
	month, ok := monthFromName(parts[1])
	if !ok {
		return 0, fmt.Errorf("parse date %q: unknown month %q", value, parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("parse date %q: year: %w", value, err)
	}
	return midnight(year, month, day, loc)
}

// ParseNumericDate parses "DD.MM.YYYY" into the epoch seconds of that
// day's midnight in now's location. Any value containing "ponad" is taken
// to mean 15 days before now.
func ParseNumericDate(value string, now time.Time) (int64, error) {
	if strings.Contains(value, relativeDateMarker) {
		then := now.AddDate(0, 0, -15)
		return midnight(then.Year(), then.Month(), then.Day(), now.Location())
	}

	parts := strings.Split(strings.TrimSpace(value), ".")
	if len(parts) != 3 {
		return 0, fmt.Errorf("parse date %q: expected DD.MM.YYYY", value)
	}
	numbers := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("parse date %q: %w", value, err)
		}
		numbers[i] = n
	}
	return midnight(numbers[2], time.Month(numbers[1]), numbers[0], now.Location())
}
