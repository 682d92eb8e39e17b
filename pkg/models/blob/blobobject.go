package blob

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/models/common"
)

// BlobObject is the facade for org.infogrid.model.Blob/BlobObject: an object carrying content of any MIME type.
// The type is abstract, objects are blessed with one of its subtypes.
type BlobObject struct {
	mesh.Facade
}

var BlobObject_TYPE = lookup[modelbase.EntityType]("BlobObject")

const BlobObject_Content_NAME = "Content"

var (
	BlobObject_Content      = lookup[modelbase.PropertyType]("BlobObject_Content")
	BlobObject_Content_TYPE = BlobObject_Content.DataType().(*primitives.BlobDataType)
)

// BlobObject_CodeBase is the property type CodeBase. The location the content was obtained from.
const BlobObject_CodeBase_NAME = "CodeBase"

var (
	BlobObject_CodeBase      = lookup[modelbase.PropertyType]("BlobObject_CodeBase")
	BlobObject_CodeBase_TYPE = BlobObject_CodeBase.DataType()
)

func NewBlobObject(obj mesh.MeshObject) *BlobObject {
	return &BlobObject{mesh.NewFacade(obj)}
}

// AsBlobObject provides the facade for an object blessed with BlobObject or a subtype.
func AsBlobObject(obj mesh.MeshObject) (*BlobObject, error) {
	return mesh.As(obj, BlobObject_TYPE, NewBlobObject)
}

func (o *BlobObject) DefinitionObject() *common.DefinitionObject {
	return common.NewDefinitionObject(o.MeshObject)
}

func (o *BlobObject) Content() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, BlobObject_Content)
}

func (o *BlobObject) SetContent(v *primitives.BlobValue) error {
	return mesh.Set(o, BlobObject_Content, v)
}

// CodeBase provides the code base.
func (o *BlobObject) CodeBase() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, BlobObject_CodeBase)
}

func (o *BlobObject) SetCodeBase(v *primitives.StringValue) error {
	return mesh.Set(o, BlobObject_CodeBase, v)
}
