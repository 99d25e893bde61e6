package layerstore

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	cd "github.com/unkn0wn-root/layerstore/codec"
	"github.com/unkn0wn-root/layerstore/internal/resolve"
	pr "github.com/unkn0wn-root/layerstore/provider"
	"github.com/unkn0wn-root/layerstore/provider/memory"
)

// memoryStore is the cache backend: encoded values in a byte provider,
// keyed by resolved location. Volatile unless the provider itself is
// durable. Honors the NoCache hint only.
type memoryStore[V any] struct {
	batchOps[V]

	provider pr.Provider
	codecs   *cd.Registry[V]
	log      Logger
	hooks    Hooks
	ttl      time.Duration
}

var _ Store[int] = (*memoryStore[int])(nil)

func newMemoryStore[V any](opts Options[V]) (*memoryStore[V], error) {
	s := &memoryStore[V]{
		provider: opts.Provider,
		codecs:   opts.Codecs,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:    coalesce[Hooks](opts.Hooks, NopHooks{}),
		ttl:      opts.CacheTTL,
	}
	if s.provider == nil {
		s.provider = memory.New()
	}
	if s.codecs == nil {
		s.codecs = cd.NewRegistry[V]()
	}
	s.batchOps = batchOps[V]{store: s}
	return s, nil
}

func (s *memoryStore[V]) Has(ctx context.Context, id string, opts ...Option) bool {
	o := applyOptions(opts)
	if o.noCache {
		return false
	}
	loc := resolve.Entry(id, o.extension)
	_, ok, err := s.provider.Get(ctx, loc)
	if err != nil {
		s.hooks.ReadError(loc, err)
		s.log.Debug("cache has failed", Fields{"location": loc, "err": err})
		return false
	}
	return ok
}

func (s *memoryStore[V]) Get(ctx context.Context, id string, opts ...Option) (V, bool) {
	var zero V
	o := applyOptions(opts)
	if o.noCache {
		return zero, false
	}
	loc := resolve.Entry(id, o.extension)
	raw, ok, err := s.provider.Get(ctx, loc)
	if err != nil {
		s.hooks.ReadError(loc, err)
		s.log.Debug("cache get failed", Fields{"location": loc, "err": err})
		return zero, false
	}
	if !ok {
		return zero, false
	}
	v, err := s.codecs.Lookup(o.extension).Decode(raw)
	if err != nil {
		// self-heal: an undecodable entry can only get worse, drop it
		_, _ = s.provider.Del(ctx, loc)
		s.hooks.DecodeError(loc, err)
		s.hooks.SelfHeal(loc, "decode")
		return zero, false
	}
	return v, true
}

func (s *memoryStore[V]) Set(ctx context.Context, id string, value V, opts ...Option) bool {
	o := applyOptions(opts)
	if o.noCache {
		return false
	}
	loc := resolve.Entry(id, o.extension)
	raw, err := s.codecs.Lookup(o.extension).Encode(value)
	if err != nil {
		s.hooks.WriteError(loc, err)
		s.log.Debug("cache encode failed", Fields{"location": loc, "err": err})
		return false
	}
	if err := s.provider.Set(ctx, loc, raw, s.ttl); err != nil {
		s.hooks.WriteError(loc, err)
		s.log.Debug("cache set failed", Fields{"location": loc, "err": err})
		return false
	}
	return true
}

func (s *memoryStore[V]) Del(ctx context.Context, id string, opts ...Option) bool {
	o := applyOptions(opts)
	if o.noCache {
		return false
	}
	loc := resolve.Entry(id, o.extension)
	existed, err := s.provider.Del(ctx, loc)
	if err != nil {
		s.hooks.DeleteError(loc, err)
		s.log.Debug("cache del failed", Fields{"location": loc, "err": err})
		return false
	}
	return existed
}

func (s *memoryStore[V]) List(ctx context.Context, dir string, opts ...Option) []Entry[V] {
	o := applyOptions(opts)
	if o.noCache {
		return nil
	}
	scope := resolve.Directory(dir)
	keys, err := s.provider.Keys(ctx, scope)
	if err != nil {
		s.hooks.ListError(scope, err)
		s.log.Debug("cache list failed", Fields{"scope": scope, "err": err})
		return nil
	}
	sort.Strings(keys) // providers return unspecified order

	out := make([]Entry[V], 0, len(keys))
	for _, loc := range keys {
		raw, ok, err := s.provider.Get(ctx, loc)
		if err != nil || !ok {
			continue
		}
		// each entry decodes by its own extension, not the call's
		v, err := s.codecs.Lookup(locationExt(loc)).Decode(raw)
		if err != nil {
			s.hooks.DecodeError(loc, err)
			continue
		}
		out = append(out, Entry[V]{Location: loc, Value: v})
	}
	return out
}

func (s *memoryStore[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

// locationExt extracts the extension of a resolved location; entries
// without one fall back to the default.
func locationExt(loc string) string {
	ext := strings.TrimPrefix(path.Ext(loc), ".")
	if ext == "" {
		return DefaultExtension
	}
	return ext
}
