package blob

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/models/common"
)

// File is the facade for org.infogrid.model.Blob/File: a file in a directory.
type File struct {
	mesh.Facade
}

var File_TYPE = lookup[modelbase.EntityType]("File")

func NewFile(obj mesh.MeshObject) *File {
	return &File{mesh.NewFacade(obj)}
}

// AsFile provides the facade for an object blessed with File or a subtype.
func AsFile(obj mesh.MeshObject) (*File, error) {
	return mesh.As(obj, File_TYPE, NewFile)
}

// CreateFile creates a new object blessed with File.
func CreateFile(f mesh.MeshObjectFactory) (*File, error) {
	return mesh.Create(f, File_TYPE, NewFile)
}

func (o *File) BlobObject() *BlobObject {
	return NewBlobObject(o.MeshObject)
}

func (o *File) ComponentObject() *common.ComponentObject {
	return common.NewComponentObject(o.MeshObject)
}

func (o *File) Content() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, BlobObject_Content)
}

func (o *File) SetContent(v *primitives.BlobValue) error {
	return mesh.Set(o, BlobObject_Content, v)
}

func (o *File) CodeBase() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, BlobObject_CodeBase)
}

func (o *File) SetCodeBase(v *primitives.StringValue) error {
	return mesh.Set(o, BlobObject_CodeBase, v)
}

func (o *File) SequenceNumber() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, common.ComponentObject_SequenceNumber)
}

func (o *File) SetSequenceNumber(v *primitives.FloatValue) error {
	return mesh.Set(o, common.ComponentObject_SequenceNumber, v)
}
