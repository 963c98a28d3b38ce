package commands

import (
	"otodom-scraper/internal/components/chrono"
	"otodom-scraper/internal/scrapers/otodom"
	"time"
)

type CacheConfig struct {
	// empty keeps the cache in memory
	Dir        string `json:"dir"`
	TTLMinutes int    `json:"ttl_minutes"`
	MaxEntries int    `json:"max_entries"`
}

type Config struct {
	BaseUrl        string   `json:"base_url"`
	AllowedDomains []string `json:"allowed_domains"`
	AdsPerPage     int      `json:"ads_per_page"`
	TimeoutSeconds int      `json:"timeout_seconds"`
	// empty picks a random browser user agent for every request
	UserAgent string      `json:"user_agent"`
	Timezone  string      `json:"timezone"`
	Cache     CacheConfig `json:"cache"`
	// empty disables dumping http exchanges
	HttpDumpDir string `json:"http_dump_dir"`
}

func DefaultConfig() Config {
	return Config{
		BaseUrl:        otodom.DefaultBaseUrl,
		AllowedDomains: otodom.DefaultAllowedDomains,
		AdsPerPage:     otodom.DefaultAdsPerPage,
		TimeoutSeconds: 30,
		Timezone:       chrono.DefaultLocation,
		Cache: CacheConfig{
			TTLMinutes: 60,
			MaxEntries: 4096,
		},
	}
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) cacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

func (c Config) options() otodom.Options {
	return otodom.Options{
		BaseUrl:        c.BaseUrl,
		AllowedDomains: c.AllowedDomains,
		AdsPerPage:     c.AdsPerPage,
	}
}
