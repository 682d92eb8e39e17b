package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// A is the facade for objects blessed with org.infogrid.model.Test/A.
// The type is abstract, objects are blessed with one of its subtypes.
type A struct {
	mesh.Facade
}

var A_TYPE = lookup[modelbase.EntityType]("A")

var (
	A_R_SOURCE         = R_SOURCE
	A_S_SOURCE         = S_SOURCE
	A_AR1A_SOURCE      = AR1A_SOURCE
	A_AR1A_DESTINATION = AR1A_DESTINATION
	A_AR2A_SOURCE      = AR2A_SOURCE
	A_AR2A_DESTINATION = AR2A_DESTINATION
	A_ARAny_SOURCE     = ARAny_SOURCE
)

const A_X_NAME = "X"

var (
	A_X      = lookup[modelbase.PropertyType]("A_X")
	A_X_TYPE = A_X.DataType()
)

const A_XX_NAME = "XX"

var (
	A_XX      = lookup[modelbase.PropertyType]("A_XX")
	A_XX_TYPE = A_XX.DataType().(*primitives.BlobDataType)
)

const A_ReadOnly_NAME = "ReadOnly"

var (
	A_ReadOnly      = lookup[modelbase.PropertyType]("A_ReadOnly")
	A_ReadOnly_TYPE = A_ReadOnly.DataType()
)

func NewA(obj mesh.MeshObject) *A {
	return &A{mesh.NewFacade(obj)}
}

func AsA(obj mesh.MeshObject) (*A, error) {
	return mesh.As(obj, A_TYPE, NewA)
}

func (o *A) X() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, A_X)
}

func (o *A) SetX(v *primitives.StringValue) error {
	return mesh.Set(o, A_X, v)
}

func (o *A) XX() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, A_XX)
}

func (o *A) SetXX(v *primitives.BlobValue) error {
	return mesh.Set(o, A_XX, v)
}

func (o *A) ReadOnly() (*primitives.BooleanValue, error) {
	return mesh.Get[*primitives.BooleanValue](o, A_ReadOnly)
}

// R provides the B objects related via R.
func (o *A) R() ([]*B, error) {
	return mesh.Traverse(o, A_R_SOURCE, B_TYPE, NewB)
}

func (o *A) RelateR(b *B) error {
	return o.RelateAndBless(b, A_R_SOURCE)
}
