package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// Simple3 is the facade for objects blessed with org.infogrid.model.Test/Simple3.
type Simple3 struct {
	mesh.Facade
}

var Simple3_TYPE = lookup[modelbase.EntityType]("Simple3")

func NewSimple3(obj mesh.MeshObject) *Simple3 {
	return &Simple3{mesh.NewFacade(obj)}
}

func AsSimple3(obj mesh.MeshObject) (*Simple3, error) {
	return mesh.As(obj, Simple3_TYPE, NewSimple3)
}

func CreateSimple3(f mesh.MeshObjectFactory) (*Simple3, error) {
	return mesh.Create(f, Simple3_TYPE, NewSimple3)
}
