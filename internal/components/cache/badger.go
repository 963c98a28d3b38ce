package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"otodom-scraper/internal/components/assert"
	"otodom-scraper/internal/components/chrono"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("otodom.internal.components.cache")

// Badger is a persistent Cache, entries are gob encoded.
type Badger struct {
	db    *badger.DB
	ttl   time.Duration
	clock chrono.API
}

func NewBadger(db *badger.DB, ttl time.Duration, clock chrono.API) Badger {
	assert.NotNil(db)
	assert.NotNil(clock)
	return Badger{db: db, ttl: ttl, clock: clock}
}

// OpenBadger opens a badger database in dir, an empty dir opens an
// in-memory database.
func OpenBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	return badger.Open(opts)
}

func (c Badger) Get(ctx context.Context, key string) (Entry, bool, error) {
	_, span := tracer.Start(ctx, "get")
	defer span.End()

	if key == "" {
		return Entry{}, false, ErrEmptyKey
	}
	span.SetAttributes(attribute.String("cache_key", key))

	var serialized []byte
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(key))
		if err != nil {
			return err
		}
		serialized, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read item from badger")
		return Entry{}, false, err
	}

	var cached Entry
	err = gob.NewDecoder(bytes.NewBuffer(serialized)).Decode(&cached)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached item")
		return Entry{}, false, err
	}

	if c.clock.Now().Unix() >= cached.ExpiresAt {
		span.AddEvent("delete expired cache key", trace.WithAttributes(
			attribute.String("key", key),
		))
		err = c.db.Update(func(tx *badger.Txn) error {
			return tx.Delete([]byte(key))
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to delete expired key")
		}
		return Entry{}, false, nil
	}

	span.AddEvent("cache hit", trace.WithAttributes(
		attribute.Int("contentlength", len(cached.Body)),
	))
	return cached, true, nil
}

func (c Badger) Put(ctx context.Context, key string, entry Entry) error {
	_, span := tracer.Start(ctx, "put")
	defer span.End()

	if key == "" {
		return ErrEmptyKey
	}
	span.SetAttributes(attribute.String("cache_key", key))

	entry.ExpiresAt = c.clock.Now().Add(c.ttl).Unix()

	serialized := bytes.NewBuffer(nil)
	err := gob.NewEncoder(serialized).Encode(entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize entry")
		return err
	}

	err = c.db.Update(func(tx *badger.Txn) error {
		return tx.Set([]byte(key), serialized.Bytes())
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set badger item")
		return err
	}
	return nil
}
