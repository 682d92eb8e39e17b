package mesh

import (
	"fmt"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// Facade is the base of typed object facades. It embeds the
// underlying MeshObject, so a facade can be used wherever a
// MeshObject is expected.
type Facade struct {
	MeshObject
}

func NewFacade(obj MeshObject) Facade {
	return Facade{obj}
}

// GetMeshObject provides the wrapped object.
func (f *Facade) GetMeshObject() MeshObject {
	return f.MeshObject
}

// Get provides a property value with its value type.
// A null value is returned as nil.
func Get[V primitives.PropertyValue](obj MeshObject, pt modelbase.PropertyType) (V, error) {
	var _nil V

	v, err := obj.GetPropertyValue(pt)
	if err != nil || primitives.IsNull(v) {
		return _nil, err
	}
	r, ok := v.(V)
	if !ok {
		return _nil, &IllegalPropertyValueError{
			Object:       obj,
			PropertyType: pt,
			Value:        v,
			Reason:       fmt.Errorf("unexpected value type %T: %w", v, primitives.ErrIncompatibleValue),
		}
	}
	return r, nil
}

// Set sets a property value. A nil pointer is passed as null.
func Set[V primitives.PropertyValue](obj MeshObject, pt modelbase.PropertyType, v V) error {
	var pv primitives.PropertyValue
	if !primitives.IsNull(v) {
		pv = v
	}
	_, err := obj.SetPropertyValue(pt, pv)
	return err
}

// As provides a typed facade for an object blessed with the given
// entity type or one of its subtypes.
func As[F any](obj MeshObject, et modelbase.EntityType, ctor func(MeshObject) F) (F, error) {
	var _nil F

	if obj == nil {
		return _nil, fmt.Errorf("no mesh object")
	}
	if !obj.IsBlessedBy(et, true) {
		return _nil, &EntityNotBlessedError{Object: obj, EntityType: et}
	}
	return ctor(obj), nil
}

// Create creates a new object blessed with the given entity type
// and provides its typed facade.
func Create[F any](f MeshObjectFactory, et modelbase.EntityType, ctor func(MeshObject) F) (F, error) {
	var _nil F

	obj, err := f.CreateMeshObject(et)
	if err != nil {
		return _nil, err
	}
	return ctor(obj), nil
}

// Traverse provides the typed facades of the neighbors related via
// a role played by the object. Neighbors not blessed with the entity
// type are skipped.
func Traverse[F any](obj MeshObject, thisEnd modelbase.RoleType, et modelbase.EntityType, ctor func(MeshObject) F) ([]F, error) {
	neighbors, err := obj.Traverse(thisEnd)
	if err != nil {
		return nil, err
	}
	result := []F{}
	for _, n := range neighbors {
		if n.IsBlessedBy(et, true) {
			result = append(result, ctor(n))
		}
	}
	return result, nil
}
