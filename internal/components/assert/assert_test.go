package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fetcher interface{ Get() }

type client struct{}

func (*client) Get() {}

func TestNotNil(t *testing.T) {
	var typedNil *client
	var iface fetcher = typedNil

	require.Panics(t, func() { NotNil(nil) })
	require.Panics(t, func() { NotNil(iface) })
	require.Panics(t, func() { NotNil(map[string]int(nil)) })
	require.NotPanics(t, func() { NotNil(&client{}) })
	require.NotPanics(t, func() { NotNil(client{}) })
	require.NotPanics(t, func() { NotNil(0) })
}

func TestNotEmptyStr(t *testing.T) {
	require.Panics(t, func() { NotEmptyStr("") })
	require.NotPanics(t, func() { NotEmptyStr("https://www.otodom.pl") })
}
