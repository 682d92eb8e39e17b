package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// B is the facade for objects blessed with org.infogrid.model.Test/B.
type B struct {
	mesh.Facade
}

var B_TYPE = lookup[modelbase.EntityType]("B")

var (
	B_R_DESTINATION  = R_DESTINATION
	B_RR_DESTINATION = RR_DESTINATION
	B_S_DESTINATION  = S_DESTINATION
)

const B_Z_NAME = "Z"

var (
	B_Z        = lookup[modelbase.PropertyType]("B_Z")
	B_Z_TYPE   = B_Z.DataType().(*primitives.EnumeratedDataType)
	B_Z_Value1 = B_Z_TYPE.Select("Value1")
	B_Z_Value2 = B_Z_TYPE.Select("Value2")
	B_Z_Value3 = B_Z_TYPE.Select("Value3")
)

const B_U_NAME = "U"

var (
	B_U      = lookup[modelbase.PropertyType]("A_U")
	B_U_TYPE = B_U.DataType()
)

func NewB(obj mesh.MeshObject) *B {
	return &B{mesh.NewFacade(obj)}
}

func AsB(obj mesh.MeshObject) (*B, error) {
	return mesh.As(obj, B_TYPE, NewB)
}

func CreateB(f mesh.MeshObjectFactory) (*B, error) {
	return mesh.Create(f, B_TYPE, NewB)
}

func (o *B) Z() (*primitives.EnumeratedValue, error) {
	return mesh.Get[*primitives.EnumeratedValue](o, B_Z)
}

func (o *B) SetZ(v *primitives.EnumeratedValue) error {
	return mesh.Set(o, B_Z, v)
}

func (o *B) U() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, B_U)
}

func (o *B) SetU(v *primitives.StringValue) error {
	return mesh.Set(o, B_U, v)
}

// RSources provides the A objects relating this object via R.
func (o *B) RSources() ([]*A, error) {
	return mesh.Traverse(o, B_R_DESTINATION, A_TYPE, NewA)
}
