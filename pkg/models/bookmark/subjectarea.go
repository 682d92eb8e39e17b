// Package bookmark provides the bookmark facades.
package bookmark

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
