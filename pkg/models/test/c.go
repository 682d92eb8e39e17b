package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// C is the facade for objects blessed with org.infogrid.model.Test/C.
type C struct {
	mesh.Facade
}

var C_TYPE = lookup[modelbase.EntityType]("C")

func NewC(obj mesh.MeshObject) *C {
	return &C{mesh.NewFacade(obj)}
}

func AsC(obj mesh.MeshObject) (*C, error) {
	return mesh.As(obj, C_TYPE, NewC)
}

func CreateC(f mesh.MeshObjectFactory) (*C, error) {
	return mesh.Create(f, C_TYPE, NewC)
}
