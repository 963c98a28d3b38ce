package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is a size bounded in-process Cache whose entries expire after a ttl.
type Memory struct {
	lru *expirable.LRU[string, Entry]
}

func NewMemory(size int, ttl time.Duration) Memory {
	return Memory{lru: expirable.NewLRU[string, Entry](size, nil, ttl)}
}

func (m Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	if key == "" {
		return Entry{}, false, ErrEmptyKey
	}
	entry, ok := m.lru.Get(key)
	return entry, ok, nil
}

func (m Memory) Put(_ context.Context, key string, entry Entry) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.lru.Add(key, entry)
	return nil
}
