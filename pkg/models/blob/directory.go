package blob

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/models/common"
)

// Directory is the facade for org.infogrid.model.Blob/Directory: a directory containing files and directories.
type Directory struct {
	mesh.Facade
}

var Directory_TYPE = lookup[modelbase.EntityType]("Directory")

func NewDirectory(obj mesh.MeshObject) *Directory {
	return &Directory{mesh.NewFacade(obj)}
}

// AsDirectory provides the facade for an object blessed with Directory or a subtype.
func AsDirectory(obj mesh.MeshObject) (*Directory, error) {
	return mesh.As(obj, Directory_TYPE, NewDirectory)
}

// CreateDirectory creates a new object blessed with Directory.
func CreateDirectory(f mesh.MeshObjectFactory) (*Directory, error) {
	return mesh.Create(f, Directory_TYPE, NewDirectory)
}

func (o *Directory) DefinitionObject() *common.DefinitionObject {
	return common.NewDefinitionObject(o.MeshObject)
}

func (o *Directory) ComponentObject() *common.ComponentObject {
	return common.NewComponentObject(o.MeshObject)
}

func (o *Directory) SequenceNumber() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, common.ComponentObject_SequenceNumber)
}

func (o *Directory) SetSequenceNumber(v *primitives.FloatValue) error {
	return mesh.Set(o, common.ComponentObject_SequenceNumber, v)
}
