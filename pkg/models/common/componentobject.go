package common

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// ComponentObject is the facade for org.infogrid.model.Common/ComponentObject: an object that is a component of a definition.
// The type is abstract, objects are blessed with one of its subtypes.
type ComponentObject struct {
	mesh.Facade
}

var ComponentObject_TYPE = lookup[modelbase.EntityType]("ComponentObject")

var (
	ComponentObject_Contains_DESTINATION = Contains_DESTINATION
	ComponentObject_References_SOURCE    = References_SOURCE
)

// ComponentObject_SequenceNumber is the property type SequenceNumber. Orders the components of the same definition.
const ComponentObject_SequenceNumber_NAME = "SequenceNumber"

var (
	ComponentObject_SequenceNumber      = lookup[modelbase.PropertyType]("ComponentObject_SequenceNumber")
	ComponentObject_SequenceNumber_TYPE = ComponentObject_SequenceNumber.DataType()
)

func NewComponentObject(obj mesh.MeshObject) *ComponentObject {
	return &ComponentObject{mesh.NewFacade(obj)}
}

// AsComponentObject provides the facade for an object blessed with ComponentObject or a subtype.
func AsComponentObject(obj mesh.MeshObject) (*ComponentObject, error) {
	return mesh.As(obj, ComponentObject_TYPE, NewComponentObject)
}

// SequenceNumber provides the sequence number.
func (o *ComponentObject) SequenceNumber() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, ComponentObject_SequenceNumber)
}

func (o *ComponentObject) SetSequenceNumber(v *primitives.FloatValue) error {
	return mesh.Set(o, ComponentObject_SequenceNumber, v)
}
