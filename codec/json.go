package codec

import "encoding/json"

// JSON is the default codec. Encode pretty-prints with tab indentation so
// durable entries stay readable and diffable on disk; Decode accepts any
// JSON, indented or not.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) {
	return json.MarshalIndent(v, "", "\t")
}

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
