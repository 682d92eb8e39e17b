package common

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// DefinitionObject is the facade for org.infogrid.model.Common/DefinitionObject: an object that defines something and may contain components.
// The type is abstract, objects are blessed with one of its subtypes.
type DefinitionObject struct {
	mesh.Facade
}

var DefinitionObject_TYPE = lookup[modelbase.EntityType]("DefinitionObject")

var (
	DefinitionObject_Contains_SOURCE        = Contains_SOURCE
	DefinitionObject_References_DESTINATION = References_DESTINATION
)

func NewDefinitionObject(obj mesh.MeshObject) *DefinitionObject {
	return &DefinitionObject{mesh.NewFacade(obj)}
}

// AsDefinitionObject provides the facade for an object blessed with DefinitionObject or a subtype.
func AsDefinitionObject(obj mesh.MeshObject) (*DefinitionObject, error) {
	return mesh.As(obj, DefinitionObject_TYPE, NewDefinitionObject)
}
