package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl     string `json:"base_url"`
	AdsPerPage  int    `json:"ads_per_page"`
	UserAgent   string `json:"user_agent"`
	CacheMemory int    `json:"cache_memory"`
}

func TestLayers(t *testing.T) {
	require.Equal(t, []string{"otodom.json5", "otodom.local.json5"}, layers("otodom.json5"))
	require.Equal(t, []string{"/etc/otodom/config", "/etc/otodom/config.local"}, layers("/etc/otodom/config"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "otodom.json5")

	_, err := ReadConfig[testConfig](name)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, os.WriteFile(name, []byte(`{
		// comments are allowed
		base_url: "https://www.otodom.pl",
		ads_per_page: 72,
	}`), 0600))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "otodom.local.json5"),
		[]byte(`{ads_per_page: 24, user_agent: "test-agent"}`),
		0600,
	))

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{
		BaseUrl:    "https://www.otodom.pl",
		AdsPerPage: 24,
		UserAgent:  "test-agent",
	}, cfg)
}

func TestReadOrDefault(t *testing.T) {
	defaults := testConfig{BaseUrl: "https://www.otodom.pl", AdsPerPage: 72, CacheMemory: 4096}

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.json5")
	cfg, err := ReadOrDefault(missing, defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, cfg)

	name := filepath.Join(dir, "otodom.json5")
	require.NoError(t, os.WriteFile(name, []byte(`{ads_per_page: 24}`), 0600))
	cfg, err = ReadOrDefault(name, defaults)
	require.NoError(t, err)
	require.Equal(t, testConfig{BaseUrl: "https://www.otodom.pl", AdsPerPage: 24, CacheMemory: 4096}, cfg)

	broken := filepath.Join(dir, "broken.json5")
	require.NoError(t, os.WriteFile(broken, []byte(`{ads_per_page: `), 0600))
	_, err = ReadOrDefault(broken, defaults)
	require.Error(t, err)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "otodom.local.json5"), []byte(`{cache_memory: 16}`), 0600))

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "otodom.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{CacheMemory: 16}, cfg)
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "otodom-test.json5"), []byte(`{ads_per_page: 36}`), 0600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := ReadRecursively[testConfig]("otodom-test.json5")
	require.NoError(t, err)
	require.Equal(t, 36, cfg.AdsPerPage)

	_, err = ReadRecursively[testConfig]("otodom-test-missing.json5")
	require.ErrorIs(t, err, os.ErrNotExist)
}
