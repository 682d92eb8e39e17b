package test

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// Simple1 is the facade for objects blessed with org.infogrid.model.Test/Simple1.
type Simple1 struct {
	mesh.Facade
}

var Simple1_TYPE = lookup[modelbase.EntityType]("Simple1")

func NewSimple1(obj mesh.MeshObject) *Simple1 {
	return &Simple1{mesh.NewFacade(obj)}
}

func AsSimple1(obj mesh.MeshObject) (*Simple1, error) {
	return mesh.As(obj, Simple1_TYPE, NewSimple1)
}

func CreateSimple1(f mesh.MeshObjectFactory) (*Simple1, error) {
	return mesh.Create(f, Simple1_TYPE, NewSimple1)
}
