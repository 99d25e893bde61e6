package codec

import "gopkg.in/yaml.v3"

// YAML serializes values with gopkg.in/yaml.v3. Bound to the "yaml" and
// "yml" extensions by default. Use `yaml:"fieldName"` struct tags when the
// on-disk field names matter.
type YAML[V any] struct{}

func (YAML[V]) Encode(v V) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML[V]) Decode(b []byte) (V, error) {
	var v V
	err := yaml.Unmarshal(b, &v)
	return v, err
}
