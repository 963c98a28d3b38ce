package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogAPI(t *testing.T) {
	buff := &bytes.Buffer{}
	api := SlogAPI{Logger: slog.New(slog.NewJSONHandler(buff, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	api.ReportBroken("walker.walk", errors.New("status 500"), "https://www.otodom.pl/wynajem/")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
	require.Equal(t, "ERROR", line["level"])
	require.Equal(t, "broken component", line["msg"])
	require.Equal(t, "walker.walk", line["id"])
	require.Equal(t, "status 500", line["err"])
	require.Equal(t, "https://www.otodom.pl/wynajem/", line["params.1"])

	buff.Reset()
	api.ReportCount("walker.pages", 3)
	line = map[string]any{}
	require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
	require.Equal(t, "DEBUG", line["level"])
	require.Equal(t, float64(3), line["n"])
}
