package layerstore

import "context"

// dualStore composes the cache and file backends under one interface. The
// cache is a write-through accelerator, not a read-through one: a file hit
// on Get does not repopulate the cache.
//
// Writes and deletes go cache first, then file - and only if the cache
// step reported success. The two backends are updated independently with
// no transactional guarantee; a crash between the steps leaves them
// divergent until the next write. Note the NoCache consequence: the cache
// step reports false, so the file is never touched either.
type dualStore[V any] struct {
	batchOps[V]

	cache Store[V]
	file  Store[V]
}

var _ Store[int] = (*dualStore[int])(nil)

func newDualStore[V any](opts Options[V]) (*dualStore[V], error) {
	cache, err := newMemoryStore(opts)
	if err != nil {
		return nil, err
	}
	file, err := newFileStore(opts)
	if err != nil {
		return nil, err
	}
	s := &dualStore[V]{cache: cache, file: file}
	s.batchOps = batchOps[V]{store: s}
	return s, nil
}

// Has short-circuits on a cache hit; the file backend is only consulted on
// a cache miss. This is a fast path, not a consistency check.
func (s *dualStore[V]) Has(ctx context.Context, id string, opts ...Option) bool {
	return s.cache.Has(ctx, id, opts...) || s.file.Has(ctx, id, opts...)
}

func (s *dualStore[V]) Get(ctx context.Context, id string, opts ...Option) (V, bool) {
	if v, ok := s.cache.Get(ctx, id, opts...); ok {
		return v, ok
	}
	return s.file.Get(ctx, id, opts...)
}

func (s *dualStore[V]) Set(ctx context.Context, id string, value V, opts ...Option) bool {
	if !s.cache.Set(ctx, id, value, opts...) {
		return false
	}
	return s.file.Set(ctx, id, value, opts...)
}

func (s *dualStore[V]) Del(ctx context.Context, id string, opts ...Option) bool {
	if !s.cache.Del(ctx, id, opts...) {
		return false
	}
	return s.file.Del(ctx, id, opts...)
}

// List unions both backends' scopes, deduplicated by location with cache
// entries winning.
func (s *dualStore[V]) List(ctx context.Context, dir string, opts ...Option) []Entry[V] {
	out := s.cache.List(ctx, dir, opts...)
	seen := make(map[string]struct{}, len(out))
	for _, e := range out {
		seen[e.Location] = struct{}{}
	}
	for _, e := range s.file.List(ctx, dir, opts...) {
		if _, dup := seen[e.Location]; dup {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *dualStore[V]) Close(ctx context.Context) error {
	cacheErr := s.cache.Close(ctx)
	fileErr := s.file.Close(ctx)
	if cacheErr == nil && fileErr == nil {
		return nil
	}
	return &DualCloseError{CacheErr: cacheErr, FileErr: fileErr}
}
