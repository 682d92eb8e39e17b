package mesh

import (
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// MeshObjectIdentifier identifies a MeshObject within its MeshBase.
type MeshObjectIdentifier string

func (i MeshObjectIdentifier) String() string {
	return string(i)
}

// MeshObject is an object blessed with a set of entity types.
// Its properties are defined by the property types of the
// blessed entity types.
//
// Modifications are only possible for objects provided by a
// Transaction while this transaction is active. Objects provided
// otherwise reject modifications with a TransactionError.
type MeshObject interface {
	Identifier() MeshObjectIdentifier
	MeshBaseName() string
	// IsDead reports whether the object has been deleted.
	IsDead() bool

	// Types provides the entity types the object is blessed with.
	Types() []modelbase.EntityType
	// IsBlessedBy checks whether the object is blessed with the given
	// type, or, if subtypesOk is set, with a subtype of it.
	IsBlessedBy(et modelbase.EntityType, subtypesOk bool) bool
	Bless(types ...modelbase.EntityType) error
	Unbless(types ...modelbase.EntityType) error

	// PropertyTypes provides the property types of all blessed types.
	PropertyTypes() []modelbase.PropertyType
	GetPropertyValue(pt modelbase.PropertyType) (primitives.PropertyValue, error)
	// SetPropertyValue sets a property and returns the old value.
	SetPropertyValue(pt modelbase.PropertyType, v primitives.PropertyValue) (primitives.PropertyValue, error)
	// SetPropertyValues sets a set of properties. Either all values
	// are set or none.
	SetPropertyValues(values map[modelbase.PropertyType]primitives.PropertyValue) error

	// NeighborMeshObjects provides the directly related objects
	// ordered by identifier.
	NeighborMeshObjects() ([]MeshObject, error)
	IsRelated(neighbor MeshObject) bool
	// RoleTypes provides the role types this object plays in the
	// relationship to the given neighbor.
	RoleTypes(neighbor MeshObject) ([]modelbase.RoleType, error)
	// Traverse provides the neighbors related by a relationship
	// blessed with the given role type at this end, or a role type
	// refining it.
	Traverse(thisEnd modelbase.RoleType) ([]MeshObject, error)

	Relate(neighbor MeshObject) error
	// Unrelate removes the relationship to a neighbor together with
	// all its role types.
	Unrelate(neighbor MeshObject) error
	// BlessRelationship blesses the relationship to a neighbor with
	// role types for this end. The neighbor plays the inverse roles.
	BlessRelationship(neighbor MeshObject, thisEnds ...modelbase.RoleType) error
	UnblessRelationship(neighbor MeshObject, thisEnds ...modelbase.RoleType) error
	// RelateAndBless relates a neighbor and blesses the new
	// relationship. Either both succeed or none.
	RelateAndBless(neighbor MeshObject, thisEnds ...modelbase.RoleType) error

	TimeCreated() utils.Timestamp
	TimeUpdated() utils.Timestamp
	TimeRead() utils.Timestamp
}

// MeshObjectFactory creates new objects blessed with a set of types.
type MeshObjectFactory interface {
	CreateMeshObject(types ...modelbase.EntityType) (MeshObject, error)
}

// Transaction scopes the modifications of a MeshBase. The objects
// it provides may be modified while it is active.
type Transaction interface {
	MeshObjectFactory

	FindMeshObject(id MeshObjectIdentifier) (MeshObject, error)
	DeleteMeshObject(obj MeshObject) error
	// Object provides the handle of an object bound to the
	// transaction.
	Object(obj MeshObject) (MeshObject, error)

	Commit() error
	Rollback() error
}
