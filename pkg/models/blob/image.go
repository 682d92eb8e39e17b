package blob

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/models/common"
)

// Image is the facade for org.infogrid.model.Blob/Image: a bitmap image.
type Image struct {
	mesh.Facade
}

var Image_TYPE = lookup[modelbase.EntityType]("Image")

const Image_Content_NAME = "Content"

var (
	Image_Content      = lookup[modelbase.PropertyType]("Image_Content")
	Image_Content_TYPE = Image_Content.DataType().(*primitives.BlobDataType)
)

// Image_Size is the property type Size. The width and height of the image in pixels.
const Image_Size_NAME = "Size"

var (
	Image_Size      = lookup[modelbase.PropertyType]("Image_Size")
	Image_Size_TYPE = Image_Size.DataType()
)

func NewImage(obj mesh.MeshObject) *Image {
	return &Image{mesh.NewFacade(obj)}
}

// AsImage provides the facade for an object blessed with Image or a subtype.
func AsImage(obj mesh.MeshObject) (*Image, error) {
	return mesh.As(obj, Image_TYPE, NewImage)
}

// CreateImage creates a new object blessed with Image.
func CreateImage(f mesh.MeshObjectFactory) (*Image, error) {
	return mesh.Create(f, Image_TYPE, NewImage)
}

func (o *Image) DefinitionObject() *common.DefinitionObject {
	return common.NewDefinitionObject(o.MeshObject)
}

func (o *Image) Content() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, Image_Content)
}

func (o *Image) SetContent(v *primitives.BlobValue) error {
	return mesh.Set(o, Image_Content, v)
}

// Size provides the size.
func (o *Image) Size() (*primitives.ExtentValue, error) {
	return mesh.Get[*primitives.ExtentValue](o, Image_Size)
}

func (o *Image) SetSize(v *primitives.ExtentValue) error {
	return mesh.Set(o, Image_Size, v)
}
