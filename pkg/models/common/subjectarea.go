// Package common provides the facades for the Common subject area,
// which defines the definition and component roles shared by other
// subject areas.
package common

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
