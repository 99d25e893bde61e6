// Package asynchook decouples Hooks implementations from the storage hot
// path: events are queued and delivered by worker goroutines, and dropped
// when the queue is full rather than blocking a store call.
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/layerstore"
)

type Hooks struct {
	inner layerstore.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ layerstore.Hooks = (*Hooks)(nil)

func New(inner layerstore.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Events enqueued after
// Close panic; stop the stores first.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) ReadError(loc string, err error) { h.try(func() { h.inner.ReadError(loc, err) }) }
func (h *Hooks) WriteError(loc string, err error) {
	h.try(func() { h.inner.WriteError(loc, err) })
}
func (h *Hooks) DeleteError(loc string, err error) {
	h.try(func() { h.inner.DeleteError(loc, err) })
}
func (h *Hooks) ListError(loc string, err error) { h.try(func() { h.inner.ListError(loc, err) }) }
func (h *Hooks) DecodeError(loc string, err error) {
	h.try(func() { h.inner.DecodeError(loc, err) })
}
func (h *Hooks) SelfHeal(loc, reason string) { h.try(func() { h.inner.SelfHeal(loc, reason) }) }
