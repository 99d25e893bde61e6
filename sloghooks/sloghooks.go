// Package sloghooks logs the discarded-error stream through log/slog, with
// per-event sampling so a flapping filesystem or provider cannot flood the
// log.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/layerstore"
)

type Options struct {
	// Sampling per event family; 0/1 = log all.
	ReadEvery     uint64
	DecodeEvery   uint64
	SelfHealEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	readCtr     atomic.Uint64
	decodeCtr   atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ layerstore.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) ReadError(location string, err error) {
	if h.l == nil || !sample(h.opts.ReadEvery, &h.readCtr) {
		return
	}
	h.l.Warn("layerstore.read_error", "location", location, "err", err)
}

func (h *Hooks) WriteError(location string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("layerstore.write_error", "location", location, "err", err)
}

func (h *Hooks) DeleteError(location string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("layerstore.delete_error", "location", location, "err", err)
}

func (h *Hooks) ListError(location string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("layerstore.list_error", "location", location, "err", err)
}

func (h *Hooks) DecodeError(location string, err error) {
	if h.l == nil || !sample(h.opts.DecodeEvery, &h.decodeCtr) {
		return
	}
	h.l.Warn("layerstore.decode_error", "location", location, "err", err)
}

func (h *Hooks) SelfHeal(location, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("layerstore.self_heal", "location", location, "reason", reason)
}
