package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// Simple2 is the facade for objects blessed with org.infogrid.model.Test/Simple2.
type Simple2 struct {
	mesh.Facade
}

var Simple2_TYPE = lookup[modelbase.EntityType]("Simple2")

func NewSimple2(obj mesh.MeshObject) *Simple2 {
	return &Simple2{mesh.NewFacade(obj)}
}

func AsSimple2(obj mesh.MeshObject) (*Simple2, error) {
	return mesh.As(obj, Simple2_TYPE, NewSimple2)
}

func CreateSimple2(f mesh.MeshObjectFactory) (*Simple2, error) {
	return mesh.Create(f, Simple2_TYPE, NewSimple2)
}
