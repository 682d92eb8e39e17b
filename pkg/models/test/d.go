package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// D is the facade for objects blessed with org.infogrid.model.Test/D.
type D struct {
	mesh.Facade
}

var D_TYPE = lookup[modelbase.EntityType]("D")

func NewD(obj mesh.MeshObject) *D {
	return &D{mesh.NewFacade(obj)}
}

func AsD(obj mesh.MeshObject) (*D, error) {
	return mesh.As(obj, D_TYPE, NewD)
}

func CreateD(f mesh.MeshObjectFactory) (*D, error) {
	return mesh.Create(f, D_TYPE, NewD)
}

func (o *D) C() *C {
	return NewC(o.MeshObject)
}
