package codec

import "fmt"

// Text is the fallback codec for non-structured extensions. Encode renders
// the value's plain string form (the string itself for string values,
// fmt.Sprint otherwise); Decode hands the raw bytes back as a string.
// Decoding into a V that cannot hold a string fails, which the backends
// surface as absence.
type Text[V any] struct{}

var _ Codec[string] = Text[string]{}

func (Text[V]) Encode(v V) ([]byte, error) {
	if s, ok := any(v).(string); ok {
		return []byte(s), nil
	}
	return []byte(fmt.Sprint(v)), nil
}

func (Text[V]) Decode(b []byte) (V, error) {
	if v, ok := any(string(b)).(V); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("codec: %T cannot hold raw text", zero)
}
