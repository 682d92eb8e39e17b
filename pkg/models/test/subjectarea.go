// Package test provides a subject area covering every data type
// family, abstract and derived entity types, and refined relationship
// types. It is used to test the model and mesh layers.
package test

import (
	_ "embed"

	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

//go:embed model.yaml
var data []byte

var SUBJECTAREA = modelbase.MustLoadSubjectArea(data)

func lookup[T modelbase.MeshType](local string) T {
	return modelbase.MustFind[T](SUBJECTAREA.Identifier().Child(local))
}
