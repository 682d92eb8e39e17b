package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// AA is the facade for objects blessed with org.infogrid.model.Test/AA.
type AA struct {
	mesh.Facade
}

var AA_TYPE = lookup[modelbase.EntityType]("AA")

var (
	AA_RR_SOURCE = RR_SOURCE
)

const AA_Y_NAME = "Y"

var (
	AA_Y      = lookup[modelbase.PropertyType]("AA_Y")
	AA_Y_TYPE = AA_Y.DataType()
)

func NewAA(obj mesh.MeshObject) *AA {
	return &AA{mesh.NewFacade(obj)}
}

func AsAA(obj mesh.MeshObject) (*AA, error) {
	return mesh.As(obj, AA_TYPE, NewAA)
}

func CreateAA(f mesh.MeshObjectFactory) (*AA, error) {
	return mesh.Create(f, AA_TYPE, NewAA)
}

func (o *AA) A() *A {
	return NewA(o.MeshObject)
}

func (o *AA) X() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, A_X)
}

func (o *AA) SetX(v *primitives.StringValue) error {
	return mesh.Set(o, A_X, v)
}

func (o *AA) XX() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, A_XX)
}

func (o *AA) SetXX(v *primitives.BlobValue) error {
	return mesh.Set(o, A_XX, v)
}

func (o *AA) ReadOnly() (*primitives.BooleanValue, error) {
	return mesh.Get[*primitives.BooleanValue](o, A_ReadOnly)
}

func (o *AA) Y() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, AA_Y)
}

func (o *AA) SetY(v *primitives.FloatValue) error {
	return mesh.Set(o, AA_Y, v)
}
