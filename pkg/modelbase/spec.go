package modelbase

import (
	"encoding/json"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
)

// SubjectAreaSpecification is the serialized form of a subject area.
type SubjectAreaSpecification struct {
	Name              string                          `json:"name"`
	UserName          string                          `json:"userName,omitempty"`
	Description       string                          `json:"description,omitempty"`
	Dependencies      []string                        `json:"dependencies,omitempty"`
	EntityTypes       []EntityTypeSpecification       `json:"entityTypes,omitempty"`
	RelationshipTypes []RelationshipTypeSpecification `json:"relationshipTypes,omitempty"`
}

type TypeSpecification struct {
	Name        string `json:"name"`
	UserName    string `json:"userName,omitempty"`
	Description string `json:"description,omitempty"`
}

type EntityTypeSpecification struct {
	TypeSpecification `json:",inline"`
	Abstract          bool                        `json:"abstract,omitempty"`
	Supertypes        []string                    `json:"supertypes,omitempty"`
	Properties        []PropertyTypeSpecification `json:"properties,omitempty"`
}

type PropertyTypeSpecification struct {
	TypeSpecification `json:",inline"`
	// ID overrides the default local identifier <entity type>_<name>.
	ID             string                           `json:"id,omitempty"`
	Type           primitives.DataTypeSpecification `json:"type"`
	Default        *Literal                         `json:"default,omitempty"`
	Optional       bool                             `json:"optional,omitempty"`
	ReadOnly       bool                             `json:"readOnly,omitempty"`
	SequenceNumber float64                          `json:"sequenceNumber,omitempty"`
}

type RelationshipTypeSpecification struct {
	TypeSpecification `json:",inline"`
	Source            RoleTypeSpecification `json:"source"`
	Destination       RoleTypeSpecification `json:"destination"`
}

type RoleTypeSpecification struct {
	// EntityType is empty for any entity type.
	EntityType   string   `json:"entityType,omitempty"`
	Multiplicity string   `json:"multiplicity,omitempty"`
	Refines      []string `json:"refines,omitempty"`
}

// Literal is the string representation of a property value.
// Plain YAML numbers and booleans are accepted, also.
type Literal string

func (l *Literal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Literal(s)
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.(type) {
	case bool, float64:
		*l = Literal(strings.TrimSpace(string(data)))
		return nil
	}
	return fmt.Errorf("scalar value expected for literal")
}

func (l *Literal) String() string {
	return string(*l)
}

// ParseSubjectArea decodes a YAML or JSON subject area specification.
func ParseSubjectArea(data []byte) (*SubjectAreaSpecification, error) {
	var spec SubjectAreaSpecification
	err := yaml.UnmarshalStrict(data, &spec)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("subject area name missing")
	}
	return &spec, nil
}
