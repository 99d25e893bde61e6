// Package memory implements the default in-process provider: a map behind a
// RWMutex. Entries live until deleted or until the process exits; a non-zero
// TTL expires entries lazily on read.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	pr "github.com/unkn0wn-root/layerstore/provider"
)

type entry struct {
	value []byte
	exp   time.Time // zero => no expiry
}

type Provider struct {
	mu sync.RWMutex
	m  map[string]entry
}

var _ pr.Provider = (*Provider)(nil)

func New() *Provider {
	return &Provider{m: make(map[string]entry)}
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	e, ok := p.m[key]
	p.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if expired(e) {
		p.mu.Lock()
		// re-check under the write lock; a concurrent Set may have renewed it
		if cur, ok := p.m[key]; ok && expired(cur) {
			delete(p.m, key)
		}
		p.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	p.mu.Lock()
	p.m[key] = entry{value: value, exp: exp}
	p.mu.Unlock()
	return nil
}

func (p *Provider) Del(_ context.Context, key string) (bool, error) {
	p.mu.Lock()
	e, ok := p.m[key]
	if ok {
		delete(p.m, key)
	}
	p.mu.Unlock()
	return ok && !expired(e), nil
}

func (p *Provider) Keys(_ context.Context, prefix string) ([]string, error) {
	p.mu.RLock()
	keys := make([]string, 0, len(p.m))
	for k, e := range p.m {
		if expired(e) {
			continue
		}
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	p.mu.RUnlock()
	return keys, nil
}

func (p *Provider) Close(_ context.Context) error {
	p.mu.Lock()
	p.m = make(map[string]entry)
	p.mu.Unlock()
	return nil
}

func expired(e entry) bool {
	return !e.exp.IsZero() && time.Now().After(e.exp)
}
