// Package layerstore implements a layered key-value storage abstraction:
// one generic Store[V] interface over an in-process cache, a durable
// file-backed store, and a dual store composing both with cache-aside
// semantics.
//
// Components:
//   - provider.Provider: byte store behind the cache backend (in-process
//     map by default; BigCache, Ristretto, Redis, SQLite adapters).
//   - codec.Codec[V] / codec.Registry[V]: (de)serializes V <-> []byte,
//     selected per call by the entry's extension ("json" by default).
//   - Store[V]: primitives (Has/Get/Set/Del/List) plus the batch and
//     predicate operations built on top of them.
//
// Locations:
//
//	entries     <identifier>.<extension>   e.g. "guilds/123.json"
//	directories <identifier>/              scope for List
//
// Identifiers are path-like: "guilds/123" with the default extension
// resolves to the cache key "guilds/123.json" and, on a file store rooted
// at /data, to the file /data/guilds/123.json.
//
// Failure contract: read, write and parse failures never surface as errors
// from the primitives - they convert to absent/false/empty results, with
// the discarded cause forwarded to the optional Hooks observer. Callers
// who must distinguish "absent" from "failed" need a different layer.
package layerstore
