package runtime

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// TypeExtractor determines the type name of a serialized object
// without decoding the complete object.
type TypeExtractor func(data []byte) (string, error)

type accessorPointer[P any] interface {
	TypeAccessor
	*P
}

// TypeExtractorFor decodes the serialized data into the meta type O and
// takes the type name from there.
func TypeExtractorFor[O any, P accessorPointer[O]]() TypeExtractor {
	return func(data []byte) (string, error) {
		meta := P(new(O))
		if err := yaml.Unmarshal(data, meta); err != nil {
			return "", err
		}
		return meta.GetType(), nil
	}
}

// Encoding serializes objects of the types of a scheme.
type Encoding[T Object] interface {
	SchemeTypes[T]

	Decode(data []byte) (T, error)
	Encode(o T) ([]byte, error)
}

// Scheme is an Encoding accepting new type registrations.
type Scheme[E Object] interface {
	Encoding[E]
	Register(name string, proto E) error
}

type yamlScheme[E Object] struct {
	*types[E]
	extract TypeExtractor
}

var _ Scheme[Object] = (*yamlScheme[Object])(nil)

// NewYAMLScheme provides a scheme serializing objects as YAML.
// Because YAML is a superset of JSON, JSON input is decoded, too.
func NewYAMLScheme[E Object](e TypeExtractor) Scheme[E] {
	return &yamlScheme[E]{types: newTypes[E](), extract: e}
}

func (s *yamlScheme[E]) Decode(data []byte) (E, error) {
	var zero E

	typ, err := s.extract(data)
	if err != nil {
		return zero, err
	}
	if typ == "" {
		return zero, fmt.Errorf("serialized object has no type")
	}
	o, err := s.CreateObject(typ)
	if err != nil {
		return zero, err
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return zero, fmt.Errorf("cannot decode %s: %w", typ, err)
	}
	return o, nil
}

func (s *yamlScheme[E]) Encode(o E) ([]byte, error) {
	return yaml.Marshal(o)
}
