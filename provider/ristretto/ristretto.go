// Package ristretto adapts dgraph-io/ristretto as a layerstore provider.
//
// Ristretto cannot enumerate its contents, so the provider maintains its own
// key index alongside the cache. The index is advisory: entries ristretto
// evicts on its own linger in the index until the next Keys call observes
// the miss and prunes them.
package ristretto

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/layerstore/provider"
)

type Provider struct {
	c *rc.Cache

	mu   sync.Mutex
	keys map[string]struct{}
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c, keys: make(map[string]struct{})}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		p.forget(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if p.c.SetWithTTL(key, value, int64(len(value)), ttl) {
		p.mu.Lock()
		p.keys[key] = struct{}{}
		p.mu.Unlock()
	}
	return nil
}

func (p *Provider) Del(_ context.Context, key string) (bool, error) {
	_, existed := p.c.Get(key)
	p.c.Del(key)
	p.forget(key)
	return existed, nil
}

func (p *Provider) Keys(_ context.Context, prefix string) ([]string, error) {
	p.mu.Lock()
	candidates := make([]string, 0, len(p.keys))
	for k := range p.keys {
		if strings.HasPrefix(k, prefix) {
			candidates = append(candidates, k)
		}
	}
	p.mu.Unlock()

	// prune index entries the cache has since evicted
	live := candidates[:0]
	for _, k := range candidates {
		if _, ok := p.c.Get(k); ok {
			live = append(live, k)
		} else {
			p.forget(k)
		}
	}
	return live, nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto metrics to the application; not part of the
// provider contract.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }

func (p *Provider) forget(key string) {
	p.mu.Lock()
	delete(p.keys, key)
	p.mu.Unlock()
}
