// Package codec provides the serialization layer for layerstore.
//
// A Codec[V] turns values into the bytes a backend stores - a cache provider
// entry or a file under the store root. Which codec applies is decided per
// call by the entry's extension through a Registry: "json" entries are
// pretty-printed JSON, registered extensions such as "yaml", "cbor" and
// "msgpack" use their own wire formats, and anything unknown falls back to
// raw text.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
