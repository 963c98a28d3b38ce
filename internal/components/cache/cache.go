package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/PuerkitoBio/purell"
)

// Entry is a cached HTTP response.
type Entry struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte

	ExpiresAt int64
}

// Cache stores responses by request signature, implementations are free
// to drop entries at any time.
//
// note: fault injection point
type Cache interface {
	// Get returns false when there is no live entry for the key.
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, entry Entry) error
}

var ErrEmptyKey = errors.New("cache: empty key")

const normalizeFlags = purell.FlagsSafe |
	purell.FlagsUsuallySafeNonGreedy |
	purell.FlagRemoveDirectoryIndex |
	purell.FlagRemoveFragment |
	purell.FlagSortQuery

// NormalizeURL is the URL form keys are derived from.
func NormalizeURL(rawUrl string) (string, error) {
	return purell.NormalizeURLString(rawUrl, normalizeFlags)
}

// Key derives the cache key of a request from its method, normalized url
// and body.
func Key(method, rawUrl string, body []byte) (string, error) {
	normalized, err := NormalizeURL(rawUrl)
	if err != nil {
		return "", err
	}

	hash := sha1.New()
	hash.Write([]byte(method))
	hash.Write([]byte{0})
	hash.Write([]byte(normalized))
	hash.Write([]byte{0})
	hash.Write(body)
	return "page:" + hex.EncodeToString(hash.Sum(nil)), nil
}
