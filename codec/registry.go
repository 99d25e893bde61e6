package codec

import "strings"

// Registry maps an entry extension to the codec used for that extension.
// Lookups that match no registered extension return the fallback codec
// (Text by default), so unknown extensions read and write raw text.
//
// A Registry is not safe for concurrent mutation; register codecs before
// handing it to a store.
type Registry[V any] struct {
	byExt    map[string]Codec[V]
	fallback Codec[V]
}

// NewRegistry returns a registry with the standard extensions bound:
// "json" (pretty-printed), "yaml"/"yml", "cbor" and "msgpack". Everything
// else falls back to Text.
func NewRegistry[V any]() *Registry[V] {
	r := &Registry[V]{
		byExt:    make(map[string]Codec[V]),
		fallback: Text[V]{},
	}
	r.Register("json", JSON[V]{})
	r.Register("yaml", YAML[V]{})
	r.Register("yml", YAML[V]{})
	r.Register("cbor", MustCBOR[V](false))
	r.Register("msgpack", Msgpack[V]{})
	return r
}

// Register binds a codec to an extension, replacing any previous binding.
// A leading dot is tolerated: "json" and ".json" are the same extension.
func (r *Registry[V]) Register(ext string, c Codec[V]) {
	r.byExt[normalizeExt(ext)] = c
}

// SetFallback replaces the codec used for unregistered extensions.
func (r *Registry[V]) SetFallback(c Codec[V]) { r.fallback = c }

// Lookup returns the codec for ext, or the fallback when ext is unknown.
func (r *Registry[V]) Lookup(ext string) Codec[V] {
	if c, ok := r.byExt[normalizeExt(ext)]; ok {
		return c
	}
	return r.fallback
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
