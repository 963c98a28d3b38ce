package otodom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMonthNameDate(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	testCases := []struct {
		value  string
		expect time.Time
	}{
		{value: "5 Marca 2020", expect: time.Date(2020, time.March, 5, 0, 0, 0, 0, warsaw)},
		{value: "1 stycznia 2019", expect: time.Date(2019, time.January, 1, 0, 0, 0, 0, warsaw)},
		{value: "17 października 2021", expect: time.Date(2021, time.October, 17, 0, 0, 0, 0, warsaw)},
		{value: "30 Grudzień 2018", expect: time.Date(2018, time.December, 30, 0, 0, 0, 0, warsaw)},
	}
	for _, test := range testCases {
		res, err := ParseMonthNameDate(test.value, warsaw)
		require.NoError(t, err, test.value)
		require.Equal(t, test.expect.Unix(), res, test.value)
	}

	res, err := ParseMonthNameDate("5 Marca 2020", time.UTC)
	require.NoError(t, err)
	require.Equal(t, int64(1583366400), res)

	for _, broken := range []string{"", "marzec 2020", "5 foo 2020", "x marca 2020", "31 lutego 2020"} {
		_, err := ParseMonthNameDate(broken, warsaw)
		require.Error(t, err, broken)
	}
}

func TestParseNumericDate(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	now := time.Date(2019, time.March, 20, 15, 4, 5, 0, warsaw)

	res, err := ParseNumericDate("12.03.2019", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2019, time.March, 12, 0, 0, 0, 0, warsaw).Unix(), res)

	res, err = ParseNumericDate("ponad 14 dni temu", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2019, time.March, 5, 0, 0, 0, 0, warsaw).Unix(), res)

	for _, broken := range []string{"", "12-03-2019", "12.13.2019", "aa.03.2019"} {
		_, err := ParseNumericDate(broken, now)
		require.Error(t, err, broken)
	}
}

func TestParseNumericDateRelativeToWallClock(t *testing.T) {
	now := time.Now()
	res, err := ParseNumericDate("ponad 14 dni temu", now)
	require.NoError(t, err)

	expect := now.AddDate(0, 0, -15)
	expectMidnight := time.Date(expect.Year(), expect.Month(), expect.Day(), 0, 0, 0, 0, now.Location())
	require.InDelta(t, expectMidnight.Unix(), res, float64(24*time.Hour/time.Second))
}
