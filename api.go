package layerstore

import (
	"context"
	"time"

	cd "github.com/unkn0wn-root/layerstore/codec"
	pr "github.com/unkn0wn-root/layerstore/provider"
)

// Entry is one listed entry: the resolved location ("dir/name.json") and
// the decoded value.
type Entry[V any] struct {
	Location string
	Value    V
}

// KV pairs an identifier with the value to write, for SetAll.
type KV[V any] struct {
	ID    string
	Value V
}

// Result is one GetAll outcome. OK is false when the entry was absent (or
// unreadable - the two are indistinguishable by contract).
type Result[V any] struct {
	ID    string
	Value V
	OK    bool
}

// Predicate gates a conditional operation on the current value.
type Predicate[V any] func(v V, id string, s Store[V]) bool

// ActionFunc is a caller-owned side effect over a present value. Its error
// is not a storage concern: the batch layer forwards it unchanged.
type ActionFunc[V any] func(v V, id string, s Store[V]) error

// ModifyFunc computes the replacement value for Modify. Its error aborts
// the write and is forwarded unchanged.
type ModifyFunc[V any] func(v V, id string, s Store[V]) (V, error)

// Store is the uniform interface over every backend: cache, file and dual.
//
// The primitives never return errors - I/O and parse failures convert to
// negative/absent/empty results at the backend boundary (see Hooks for the
// discarded causes). The batch and predicate operations are pure
// composition over the primitives: per-id work runs strictly in input
// order, each call completing before the next. Errors returned by batch
// operations always originate in a caller-supplied function, never in the
// storage itself; such an error aborts the remainder of the batch.
//
// Read-modify-write through Modify is not atomic: concurrent callers race
// last-write-wins. Callers needing stronger guarantees must serialize
// access externally.
type Store[V any] interface {
	// Has reports whether the entry at id's resolved location is present.
	Has(ctx context.Context, id string, opts ...Option) bool
	// Get returns the stored value, or absence.
	Get(ctx context.Context, id string, opts ...Option) (V, bool)
	// Set stores value and reports whether the entry is present afterward.
	Set(ctx context.Context, id string, value V, opts ...Option) bool
	// Del removes the entry and reports whether removal occurred.
	Del(ctx context.Context, id string, opts ...Option) bool
	// List returns the entries scoped under dir, non-recursively.
	List(ctx context.Context, dir string, opts ...Option) []Entry[V]
	// Close releases backend resources.
	Close(ctx context.Context) error

	// Batch and predicate layer; see batch.go for exact semantics.
	HasAll(ctx context.Context, ids []string, opts ...Option) bool
	HasAny(ctx context.Context, ids []string, opts ...Option) bool
	GetAll(ctx context.Context, ids []string, opts ...Option) []Result[V]
	SetAll(ctx context.Context, entries []KV[V], opts ...Option) bool
	DelAll(ctx context.Context, ids []string, opts ...Option) bool
	Ensure(ctx context.Context, id string, fallback V, opts ...Option) V
	Expect(ctx context.Context, id string, pred Predicate[V], opts ...Option) bool
	ExpectAll(ctx context.Context, ids []string, pred Predicate[V], opts ...Option) bool
	ExpectAny(ctx context.Context, ids []string, pred Predicate[V], opts ...Option) bool
	Action(ctx context.Context, id string, fn ActionFunc[V], opts ...Option) error
	ActionIf(ctx context.Context, id string, fn ActionFunc[V], pred Predicate[V], opts ...Option) error
	ActionAll(ctx context.Context, ids []string, fn ActionFunc[V], opts ...Option) error
	ActionAllIf(ctx context.Context, ids []string, fn ActionFunc[V], pred Predicate[V], opts ...Option) error
	Modify(ctx context.Context, id string, fn ModifyFunc[V], opts ...Option) (bool, error)
	ModifyIf(ctx context.Context, id string, fn ModifyFunc[V], pred Predicate[V], opts ...Option) (bool, error)
	ModifyAll(ctx context.Context, ids []string, fn ModifyFunc[V], opts ...Option) (bool, error)
	ModifyAllIf(ctx context.Context, ids []string, fn ModifyFunc[V], pred Predicate[V], opts ...Option) (bool, error)
}

// Options tune store construction. Zero values get sensible defaults; only
// Root is required, and only for file-backed stores.
type Options[V any] struct {
	// Root is the directory durable entries live under. Required by
	// NewFile and NewDual; ignored by NewMemory.
	Root string

	// Provider is the byte store behind the cache backend. Nil means an
	// in-process map (provider/memory).
	Provider pr.Provider

	// Codecs maps extensions to codecs. Nil means codec.NewRegistry:
	// json/yaml/cbor/msgpack plus raw-text fallback.
	Codecs *cd.Registry[V]

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks

	// CacheTTL expires provider-backed cache entries. 0 means entries
	// live until deleted or the process exits. Never applies to files.
	CacheTTL time.Duration
}

// NewMemory builds the volatile cache-only store.
func NewMemory[V any](opts Options[V]) (Store[V], error) {
	return newMemoryStore(opts)
}

// NewFile builds the durable file-only store rooted at opts.Root.
func NewFile[V any](opts Options[V]) (Store[V], error) {
	return newFileStore(opts)
}

// NewDual builds the composed store: cache as the fast path, files as the
// durable fallback, both kept in sync on writes and deletes.
func NewDual[V any](opts Options[V]) (Store[V], error) {
	return newDualStore(opts)
}
