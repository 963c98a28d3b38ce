package otodom

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCookieFrom(t *testing.T) {
	header := http.Header{}
	require.Equal(t, "", CookieFrom(header))

	header.Add("Set-Cookie", "laquesis=pan-1234@a; path=/; domain=.otodom.pl; HttpOnly")
	header.Add("Set-Cookie", "other=1; path=/")
	require.Equal(t, "laquesis=pan-1234@a", CookieFrom(header))
}

func TestParseCSRFToken(t *testing.T) {
	require.Equal(
		t,
		"d6e9f6202c0fd68ddc539a54bd728d59aa27d7276470818a57ed7c3c2db5f612",
		ParseCSRFToken(offerPage),
	)
	require.Equal(t, "abc123", ParseCSRFToken([]byte(`var csrfToken =\ 'abc123';`)))
	require.Equal(t, "", ParseCSRFToken([]byte(`<html><body>no token</body></html>`)))
}

func TestParseNinjaPV(t *testing.T) {
	ninja, err := ParseNinjaPV(offerPage)
	require.NoError(t, err)
	require.Equal(t, "private", ninja.String("poster_type"))
	require.Equal(t, "PLN", ninja.String("price_currency"))
	require.Equal(t, "Gdańsk", ninja.String("city_name"))
	require.Equal(t, 379.0, *ninja.Float("ad_price"))
	require.Equal(t, 92.0, *ninja.Float("surface"))
	require.Equal(t, 3, *ninja.Int("rooms"))
	require.Equal(t, "379", ninja.String("ad_price"))
	require.Equal(t, "", ninja.String("missing"))
	require.Nil(t, ninja.Float("missing"))
	require.Nil(t, ninja.Int("city_name"))

	escaped := []byte(`<script>window.ninjaPV = {\"poster_type\":\"business\",\"rooms\":2};</script>`)
	ninja, err = ParseNinjaPV(escaped)
	require.NoError(t, err)
	require.Equal(t, "business", ninja.String("poster_type"))
	require.Equal(t, 2, *ninja.Int("rooms"))

	_, err = ParseNinjaPV([]byte(`<script>window.dataLayer = [];</script>`))
	require.ErrorIs(t, err, ErrMissingElement)

	_, err = ParseNinjaPV([]byte(`window.ninjaPV = {broken}`))
	require.Error(t, err)
}

func TestCleanPhoneNumbers(t *testing.T) {
	require.Equal(t, []string{}, CleanPhoneNumbers(nil))
	require.Equal(
		t,
		[]string{"600100200", "585554433", "601222333"},
		CleanPhoneNumbers([]string{"+48 600 100 200", "58 555-44-33.601 222 333"}),
	)
	require.Equal(t, []string{"123"}, CleanPhoneNumbers([]string{"123.", " - "}))
}
