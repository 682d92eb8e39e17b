package modelbase

import (
	"errors"
	"io"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
)

var (
	ErrNotFound    = errors.New("meta type not found")
	ErrNoSingleton = errors.New("no model base singleton set")
)

// MeshType is the common interface of all meta types.
type MeshType interface {
	Identifier() Identifier
	Name() string
	UserVisibleName() string
	Description() string
	SubjectArea() SubjectArea
}

// SubjectArea is a namespace for a consistent set of
// entity and relationship types.
type SubjectArea interface {
	MeshType

	EntityTypes() []EntityType
	RelationshipTypes() []RelationshipType
	Dependencies() []SubjectArea

	// Fingerprint is a hash of the specification of the subject area.
	Fingerprint() string
	Specification() *SubjectAreaSpecification
	ModelBase() ModelBase

	MustEntityType(name string) EntityType
	MustPropertyType(name string) PropertyType
	MustRelationshipType(name string) RelationshipType
	MustRoleType(name string) RoleType
}

type EntityType interface {
	MeshType

	IsAbstract() bool
	DirectSupertypes() []EntityType
	// AllSupertypes provides the transitive supertypes, nearest first.
	AllSupertypes() []EntityType
	IsSubtypeOfOrEquals(EntityType) bool

	LocalPropertyTypes() []PropertyType
	// AllPropertyTypes provides local and inherited property types
	// ordered by sequence number and name.
	AllPropertyTypes() []PropertyType
	FindPropertyTypeByName(name string) PropertyType

	// LocalRoleTypes provides the roles played directly by this type.
	LocalRoleTypes() []RoleType
	AllRoleTypes() []RoleType
}

type PropertyType interface {
	MeshType

	EntityType() EntityType
	DataType() primitives.DataType
	// DefaultValue provides the default value, which is nil
	// for optional properties without default.
	DefaultValue() primitives.PropertyValue
	IsOptional() bool
	IsReadOnly() bool
	SequenceNumber() float64
}

type RelationshipType interface {
	MeshType

	Source() RoleType
	Destination() RoleType
}

type RoleType interface {
	MeshType

	RelationshipType() RelationshipType
	IsSource() bool
	// EntityType provides the type playing the role. nil means
	// any entity type.
	EntityType() EntityType
	Multiplicity() *primitives.MultiplicityValue
	Inverse() RoleType
	RefinedRoleTypes() []RoleType
}

// ModelBase is a registry of subject areas.
// Loaded meta types are immutable.
type ModelBase interface {
	LoadSubjectArea(spec *SubjectAreaSpecification) (SubjectArea, error)
	// LoadSubjectAreas loads a set of subject areas in the order
	// of their dependencies.
	LoadSubjectAreas(specs ...*SubjectAreaSpecification) ([]SubjectArea, error)

	SubjectAreas() []SubjectArea

	FindSubjectArea(id Identifier) (SubjectArea, error)
	FindEntityType(id Identifier) (EntityType, error)
	FindPropertyType(id Identifier) (PropertyType, error)
	FindRelationshipType(id Identifier) (RelationshipType, error)
	FindRoleType(id Identifier) (RoleType, error)
	FindMeshType(id Identifier) (MeshType, error)

	Dump(w io.Writer)
}
