package textutil

import (
	"regexp"
	"strings"
)

var diacriticsReplacer = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n",
	"ó", "o", "ś", "s", "ź", "z", "ż", "z",
	"Ą", "A", "Ć", "C", "Ę", "E", "Ł", "L", "Ń", "N",
	"Ó", "O", "Ś", "S", "Ź", "Z", "Ż", "Z",
)

// FoldDiacritics replaces polish diacritics with their ascii base letters.
func FoldDiacritics(text string) string {
	return diacriticsReplacer.Replace(text)
}

// NormalizeText folds diacritics, optionally lowercases and replaces every
// space with `spaces`.
//
// ex. NormalizeText("ala MA KoTa", true, "-") == "ala-ma-kota"
func NormalizeText(text string, lower bool, spaces string) string {
	if lower {
		text = strings.ToLower(text)
	}
	text = FoldDiacritics(text)
	return strings.ReplaceAll(text, " ", spaces)
}

// Slug is NormalizeText with the options used for url path segments.
func Slug(text string) string {
	return NormalizeText(text, true, "-")
}

// ReplaceAll replaces every occurrence of each of `olds` with `replacement`.
func ReplaceAll(text string, olds []string, replacement string) string {
	for _, old := range olds {
		text = strings.ReplaceAll(text, old, replacement)
	}
	return text
}

// NonEmptyLines splits text on newlines and returns the trimmed lines that
// are not blank.
func NonEmptyLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseSpaces replaces runs of whitespace with a single space.
func CollapseSpaces(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}
