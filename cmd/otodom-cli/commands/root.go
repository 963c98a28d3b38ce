package commands

import (
	"context"
	"fmt"
	"log/slog"
	"otodom-scraper/internal/components/cache"
	"otodom-scraper/internal/components/chrono"
	"otodom-scraper/internal/components/telemetry"
	"otodom-scraper/internal/scrapers/otodom"
	"otodom-scraper/lib/configutil"
	"otodom-scraper/lib/restyutil"
	"otodom-scraper/lib/serviceutil"
	libtelemetry "otodom-scraper/lib/telemetry"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

var (
	configPath string
	verbose    bool
	noCache    bool
	dumpHttp   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "otodom.json5", "The config file, searched for upwards from the cwd when it is a bare name.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every request made.")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Do not cache responses.")
	rootCmd.PersistentFlags().StringVar(&dumpHttp, "dump-http", "", "Write every http exchange to this directory.")
}

var rootCmd = &cobra.Command{
	Use:   "otodom-cli",
	Short: "otodom-cli is a CLI for scraping listings off of otodom.pl.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		libtelemetry.InitSlog(verbose)
	},
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// scraper bundles everything a command needs to talk to the portal.
type scraper struct {
	walker    otodom.Walker
	extractor otodom.Extractor
	closers   []func() error
}

func (s scraper) Close() {
	for _, closer := range s.closers {
		err := closer()
		if err != nil {
			slog.Warn("failed to close scraper resource", "err", err)
		}
	}
}

func openCache(cfg Config, clock chrono.API) (cache.Cache, func() error, error) {
	if cfg.Cache.Dir == "" {
		return cache.NewMemory(cfg.Cache.MaxEntries, cfg.cacheTTL()), nil, nil
	}
	db, err := cache.OpenBadger(cfg.Cache.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache %s: %w", cfg.Cache.Dir, err)
	}
	return cache.NewBadger(db, cfg.cacheTTL(), clock), db.Close, nil
}

func newScraper() (scraper, error) {
	cfg, err := configutil.ReadOrDefault(configPath, DefaultConfig())
	if err != nil {
		return scraper{}, err
	}
	if dumpHttp != "" {
		cfg.HttpDumpDir = dumpHttp
	}

	clock, err := chrono.NewStandardImpl(cfg.Timezone)
	if err != nil {
		return scraper{}, fmt.Errorf("load timezone: %w", err)
	}
	metrics, err := telemetry.NewMetricsAPI(otel.Meter("otodom-cli"), telemetry.SlogAPI{})
	if err != nil {
		return scraper{}, fmt.Errorf("create instruments: %w", err)
	}
	tel := telemetry.NewScopedAPI("otodom", metrics)

	out := scraper{}
	opts := otodom.ClientOptions{
		Timeout:        cfg.timeout(),
		AllowedDomains: cfg.AllowedDomains,
	}
	if cfg.UserAgent != "" {
		userAgent := cfg.UserAgent
		opts.UserAgent = func() string { return userAgent }
	}
	if !noCache {
		store, closeCache, err := openCache(cfg, clock)
		if err != nil {
			return scraper{}, err
		}
		opts.Cache = store
		if closeCache != nil {
			out.closers = append(out.closers, closeCache)
		}
	}
	if cfg.HttpDumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(cfg.HttpDumpDir)
		if err != nil {
			out.Close()
			return scraper{}, err
		}
		opts.Output = output
	}

	client := otodom.NewClient(opts, tel)
	out.walker = otodom.NewWalker(client, cfg.options(), tel)
	out.extractor = otodom.NewExtractor(client, clock, cfg.options(), tel)

	slog.Debug("scraper ready", "base_url", cfg.BaseUrl, "cache", !noCache, "dump", cfg.HttpDumpDir)
	return out, nil
}

// mustScraper is newScraper for command bodies.
func mustScraper() scraper {
	s, err := newScraper()
	if err != nil {
		serviceutil.Fatal("failed to initialize scraper", err)
	}
	return s
}
