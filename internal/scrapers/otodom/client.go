package otodom

import (
	"context"
	"fmt"
	"net/http"
	"otodom-scraper/internal/components/assert"
	"otodom-scraper/internal/components/cache"
	"otodom-scraper/internal/components/telemetry"
	"otodom-scraper/lib/restyutil"
	"time"

	browser "github.com/EDDYCJY/fake-useragent"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

const (
	report_client_cache = "client.cache"
)

var tracer = otel.Tracer("otodom.internal.scrapers.otodom")

// Page is a fetched response.
type Page struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Fetcher issues the requests the scraper needs. Any response outside of
// 2xx is returned as a *StatusError.
//
// note: fault injection point
type Fetcher interface {
	Get(ctx context.Context, url string) (Page, error)
	PostForm(ctx context.Context, url string, body string, header map[string]string) (Page, error)
}

type ClientOptions struct {
	// defaults to 30 seconds
	Timeout time.Duration
	// called for every request, defaults to a random browser user agent
	UserAgent func() string
	// nil disables caching
	Cache cache.Cache
	// redirects to hosts outside of this list are refused, empty allows any
	AllowedDomains []string
	// nil disables dumping of http exchanges
	Output restyutil.Output
}

// Client is the resty backed Fetcher.
type Client struct {
	http      *resty.Client
	userAgent func() string
	cache     cache.Cache
	tel       telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) *Client {
	assert.NotNil(tel)

	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == nil {
		opts.UserAgent = browser.Random
	}

	httpClient := resty.New()
	// the session cookie of a detail page is passed explicitly, possibly
	// from the cache, so the jar would only add a second stale one
	httpClient.SetCookieJar(nil)
	httpClient.SetTimeout(opts.Timeout)
	if len(opts.AllowedDomains) > 0 {
		httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(opts.AllowedDomains...))
	}
	telemetry.InstrumentResty(httpClient, tel)
	restyutil.InstrumentClient(httpClient, tracer, opts.Output)

	return &Client{
		http:      httpClient,
		userAgent: opts.UserAgent,
		cache:     opts.Cache,
		tel:       tel,
	}
}

func (c *Client) Get(ctx context.Context, url string) (Page, error) {
	return c.do(ctx, http.MethodGet, url, "", nil)
}

func (c *Client) PostForm(ctx context.Context, url string, body string, header map[string]string) (Page, error) {
	return c.do(ctx, http.MethodPost, url, body, header)
}

func (c *Client) cached(ctx context.Context, key string) (Page, bool) {
	if c.cache == nil || key == "" {
		return Page{}, false
	}
	entry, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.tel.ReportWarning(report_client_cache, fmt.Errorf("get: %w", err), key)
		return Page{}, false
	}
	if !found {
		return Page{}, false
	}
	return Page{
		URL:        entry.URL,
		StatusCode: entry.StatusCode,
		Header:     entry.Header,
		Body:       entry.Body,
	}, true
}

func (c *Client) store(ctx context.Context, key string, page Page) {
	if c.cache == nil || key == "" {
		return
	}
	err := c.cache.Put(ctx, key, cache.Entry{
		URL:        page.URL,
		StatusCode: page.StatusCode,
		Header:     page.Header,
		Body:       page.Body,
	})
	if err != nil {
		c.tel.ReportWarning(report_client_cache, fmt.Errorf("put: %w", err), key)
	}
}

func (c *Client) do(ctx context.Context, method, url, body string, header map[string]string) (Page, error) {
	key, err := cache.Key(method, url, []byte(body))
	if err != nil {
		c.tel.ReportWarning(report_client_cache, fmt.Errorf("key: %w", err), url)
		key = ""
	}
	if page, ok := c.cached(ctx, key); ok {
		c.tel.ReportDebug(report_client_cache, "hit", method, url)
		return page, nil
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("User-Agent", c.userAgent()).
		SetHeaders(header)
	if body != "" {
		req.SetBody(body)
	}

	res, err := req.Execute(method, url)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		URL:        url,
		StatusCode: res.StatusCode(),
		Header:     res.Header(),
		Body:       res.Body(),
	}
	if page.StatusCode < 200 || page.StatusCode >= 300 {
		return page, &StatusError{Method: method, URL: url, StatusCode: page.StatusCode}
	}

	c.store(ctx, key, page)
	return page, nil
}
