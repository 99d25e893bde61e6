package layerstore

import "strings"

// DefaultExtension is the extension assumed when a call specifies none.
// It selects both the ".json" location suffix and the JSON codec.
const DefaultExtension = "json"

type callOptions struct {
	extension string
	noCache   bool
	noFile    bool
}

// Option adjusts a single store call. Hints are backend-agnostic: each
// backend honors the ones that concern it (the cache backend NoCache, the
// file backend NoFile) and ignores the rest.
type Option func(*callOptions)

// WithExtension overrides the entry extension for this call. The extension
// is part of the resolved location, so the same identifier under different
// extensions names different entries.
func WithExtension(ext string) Option {
	return func(o *callOptions) {
		if ext != "" {
			o.extension = strings.TrimPrefix(ext, ".")
		}
	}
}

// NoCache makes the cache backend report absence and skip writes for this
// call. On a dual store this short-circuits the whole write: the file step
// only runs after a successful cache step.
func NoCache() Option {
	return func(o *callOptions) { o.noCache = true }
}

// NoFile makes the file backend report absence and skip writes for this
// call, without touching the filesystem.
func NoFile() Option {
	return func(o *callOptions) { o.noFile = true }
}

func applyOptions(opts []Option) callOptions {
	o := callOptions{extension: DefaultExtension}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
