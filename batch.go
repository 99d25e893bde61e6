package layerstore

import "context"

// batchOps implements the batch and predicate layer once, purely in terms
// of the primitive operations, and is embedded by every backend.
//
// Contracts shared by all operations here:
//   - per-id work runs sequentially in input order, each call completing
//     before the next begins;
//   - AND-aggregated operations (SetAll, DelAll, ModifyAll) attempt every
//     entry even after a failure and return the conjunction of outcomes -
//     the aggregate boolean does not say which entry failed;
//   - errors come only from caller-supplied functions and abort the
//     remainder of the batch.
type batchOps[V any] struct {
	store Store[V]
}

func (b batchOps[V]) HasAll(ctx context.Context, ids []string, opts ...Option) bool {
	for _, id := range ids {
		if !b.store.Has(ctx, id, opts...) {
			return false
		}
	}
	return true
}

func (b batchOps[V]) HasAny(ctx context.Context, ids []string, opts ...Option) bool {
	for _, id := range ids {
		if b.store.Has(ctx, id, opts...) {
			return true
		}
	}
	return false
}

// GetAll preserves input order: one Result per id, absent ids included.
func (b batchOps[V]) GetAll(ctx context.Context, ids []string, opts ...Option) []Result[V] {
	out := make([]Result[V], 0, len(ids))
	for _, id := range ids {
		v, ok := b.store.Get(ctx, id, opts...)
		out = append(out, Result[V]{ID: id, Value: v, OK: ok})
	}
	return out
}

func (b batchOps[V]) SetAll(ctx context.Context, entries []KV[V], opts ...Option) bool {
	ok := true
	for _, e := range entries {
		if !b.store.Set(ctx, e.ID, e.Value, opts...) {
			ok = false
		}
	}
	return ok
}

func (b batchOps[V]) DelAll(ctx context.Context, ids []string, opts ...Option) bool {
	ok := true
	for _, id := range ids {
		if !b.store.Del(ctx, id, opts...) {
			ok = false
		}
	}
	return ok
}

// Ensure returns the current value when present; otherwise it writes
// fallback and returns that. The presence check completes before the
// branch, so two racing callers cannot both observe absence from a single
// half-finished check - though they can still interleave check and write.
func (b batchOps[V]) Ensure(ctx context.Context, id string, fallback V, opts ...Option) V {
	if v, ok := b.store.Get(ctx, id, opts...); ok {
		return v
	}
	b.store.Set(ctx, id, fallback, opts...)
	return fallback
}

// Expect reports whether the entry exists and satisfies pred.
func (b batchOps[V]) Expect(ctx context.Context, id string, pred Predicate[V], opts ...Option) bool {
	v, ok := b.store.Get(ctx, id, opts...)
	return ok && pred(v, id, b.store)
}

func (b batchOps[V]) ExpectAll(ctx context.Context, ids []string, pred Predicate[V], opts ...Option) bool {
	for _, id := range ids {
		if !b.Expect(ctx, id, pred, opts...) {
			return false
		}
	}
	return true
}

func (b batchOps[V]) ExpectAny(ctx context.Context, ids []string, pred Predicate[V], opts ...Option) bool {
	for _, id := range ids {
		if b.Expect(ctx, id, pred, opts...) {
			return true
		}
	}
	return false
}

// Action invokes fn on the present value for side effect; absent entries
// are skipped silently.
func (b batchOps[V]) Action(ctx context.Context, id string, fn ActionFunc[V], opts ...Option) error {
	v, ok := b.store.Get(ctx, id, opts...)
	if !ok {
		return nil
	}
	return fn(v, id, b.store)
}

func (b batchOps[V]) ActionIf(ctx context.Context, id string, fn ActionFunc[V], pred Predicate[V], opts ...Option) error {
	if !b.Expect(ctx, id, pred, opts...) {
		return nil
	}
	return b.Action(ctx, id, fn, opts...)
}

func (b batchOps[V]) ActionAll(ctx context.Context, ids []string, fn ActionFunc[V], opts ...Option) error {
	for _, id := range ids {
		if err := b.Action(ctx, id, fn, opts...); err != nil {
			return err
		}
	}
	return nil
}

func (b batchOps[V]) ActionAllIf(ctx context.Context, ids []string, fn ActionFunc[V], pred Predicate[V], opts ...Option) error {
	for _, id := range ids {
		if err := b.ActionIf(ctx, id, fn, pred, opts...); err != nil {
			return err
		}
	}
	return nil
}

// Modify replaces the present value with fn's result and returns the Set
// outcome; absent entries return false. The read and the write are two
// separate primitive calls - a concurrent writer in between loses its
// update.
func (b batchOps[V]) Modify(ctx context.Context, id string, fn ModifyFunc[V], opts ...Option) (bool, error) {
	v, ok := b.store.Get(ctx, id, opts...)
	if !ok {
		return false, nil
	}
	next, err := fn(v, id, b.store)
	if err != nil {
		return false, err
	}
	return b.store.Set(ctx, id, next, opts...), nil
}

func (b batchOps[V]) ModifyIf(ctx context.Context, id string, fn ModifyFunc[V], pred Predicate[V], opts ...Option) (bool, error) {
	if !b.Expect(ctx, id, pred, opts...) {
		return false, nil
	}
	return b.Modify(ctx, id, fn, opts...)
}

func (b batchOps[V]) ModifyAll(ctx context.Context, ids []string, fn ModifyFunc[V], opts ...Option) (bool, error) {
	ok := true
	for _, id := range ids {
		r, err := b.Modify(ctx, id, fn, opts...)
		if err != nil {
			return false, err
		}
		if !r {
			ok = false
		}
	}
	return ok, nil
}

func (b batchOps[V]) ModifyAllIf(ctx context.Context, ids []string, fn ModifyFunc[V], pred Predicate[V], opts ...Option) (bool, error) {
	ok := true
	for _, id := range ids {
		r, err := b.ModifyIf(ctx, id, fn, pred, opts...)
		if err != nil {
			return false, err
		}
		if !r {
			ok = false
		}
	}
	return ok, nil
}
