package layerstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cd "github.com/unkn0wn-root/layerstore/codec"
	"github.com/unkn0wn-root/layerstore/internal/resolve"
)

// fileStore is the durable backend: one file per entry under the injected
// root directory. Parent directories are created on write; reads parse
// lazily. Honors the NoFile hint only.
//
// Existence is inferred from a successful read, not a separate stat, so a
// permission error and a missing file both report absence.
type fileStore[V any] struct {
	batchOps[V]

	root   string
	codecs *cd.Registry[V]
	log    Logger
	hooks  Hooks
}

var _ Store[int] = (*fileStore[int])(nil)

func newFileStore[V any](opts Options[V]) (*fileStore[V], error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("layerstore: root directory is required")
	}
	s := &fileStore[V]{
		root:   opts.Root,
		codecs: opts.Codecs,
		log:    coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:  coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
	if s.codecs == nil {
		s.codecs = cd.NewRegistry[V]()
	}
	s.batchOps = batchOps[V]{store: s}
	return s, nil
}

func (s *fileStore[V]) path(loc string) string {
	return filepath.Join(s.root, filepath.FromSlash(loc))
}

func (s *fileStore[V]) Has(ctx context.Context, id string, opts ...Option) bool {
	o := applyOptions(opts)
	if o.noFile {
		return false
	}
	loc := resolve.Entry(id, o.extension)
	if _, err := os.ReadFile(s.path(loc)); err != nil {
		s.reportRead(loc, err)
		return false
	}
	return true
}

func (s *fileStore[V]) Get(ctx context.Context, id string, opts ...Option) (V, bool) {
	var zero V
	o := applyOptions(opts)
	if o.noFile {
		return zero, false
	}
	loc := resolve.Entry(id, o.extension)
	return s.read(loc, o.extension)
}

func (s *fileStore[V]) Set(ctx context.Context, id string, value V, opts ...Option) bool {
	o := applyOptions(opts)
	if o.noFile {
		return false
	}
	loc := resolve.Entry(id, o.extension)
	raw, err := s.codecs.Lookup(o.extension).Encode(value)
	if err != nil {
		s.hooks.WriteError(loc, err)
		s.log.Debug("file encode failed", Fields{"location": loc, "err": err})
		return false
	}
	p := s.path(loc)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		s.hooks.WriteError(loc, err)
		s.log.Debug("file mkdir failed", Fields{"location": loc, "err": err})
		return false
	}
	if err := os.WriteFile(p, raw, 0o644); err != nil {
		s.hooks.WriteError(loc, err)
		s.log.Debug("file write failed", Fields{"location": loc, "err": err})
		return false
	}
	return true
}

func (s *fileStore[V]) Del(ctx context.Context, id string, opts ...Option) bool {
	o := applyOptions(opts)
	if o.noFile {
		return false
	}
	loc := resolve.Entry(id, o.extension)
	if err := os.Remove(s.path(loc)); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.hooks.DeleteError(loc, err)
			s.log.Debug("file del failed", Fields{"location": loc, "err": err})
		}
		return false
	}
	return true
}

// List enumerates the directory at dir's resolved location, regular files
// only, without descending into subdirectories. Entries that fail to read
// or parse are skipped.
func (s *fileStore[V]) List(ctx context.Context, dir string, opts ...Option) []Entry[V] {
	o := applyOptions(opts)
	if o.noFile {
		return nil
	}
	scope := resolve.Directory(dir)
	dirents, err := os.ReadDir(s.path(scope))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.hooks.ListError(scope, err)
			s.log.Debug("file list failed", Fields{"scope": scope, "err": err})
		}
		return nil
	}

	out := make([]Entry[V], 0, len(dirents))
	for _, de := range dirents {
		if !de.Type().IsRegular() {
			continue
		}
		loc := scope + de.Name()
		v, ok := s.read(loc, locationExt(loc))
		if !ok {
			continue
		}
		out = append(out, Entry[V]{Location: loc, Value: v})
	}
	return out
}

// Close is a no-op: the file backend holds no handles between operations.
func (s *fileStore[V]) Close(context.Context) error { return nil }

// read loads and decodes an already-resolved location. Any failure is
// absence; the cause goes to hooks and the debug log only.
func (s *fileStore[V]) read(loc, ext string) (V, bool) {
	var zero V
	raw, err := os.ReadFile(s.path(loc))
	if err != nil {
		s.reportRead(loc, err)
		return zero, false
	}
	v, err := s.codecs.Lookup(ext).Decode(raw)
	if err != nil {
		s.hooks.DecodeError(loc, err)
		s.log.Debug("file decode failed", Fields{"location": loc, "err": err})
		return zero, false
	}
	return v, true
}

func (s *fileStore[V]) reportRead(loc string, err error) {
	// a missing file is the normal miss path, not an error worth reporting
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	s.hooks.ReadError(loc, err)
	s.log.Debug("file read failed", Fields{"location": loc, "err": err})
}
