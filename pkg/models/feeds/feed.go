package feeds

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// The type is abstract, objects are blessed with one of its subtypes.
type Feed struct {
	mesh.Facade
}

var Feed_TYPE = lookup[modelbase.EntityType]("Feed")

var (
	Feed_Contains_SOURCE = Contains_SOURCE
)

const Feed_Title_NAME = "Title"

var (
	Feed_Title      = lookup[modelbase.PropertyType]("Feed_Title")
	Feed_Title_TYPE = Feed_Title.DataType().(*primitives.BlobDataType)
)

const Feed_Description_NAME = "Description"

var (
	Feed_Description      = lookup[modelbase.PropertyType]("Feed_Description")
	Feed_Description_TYPE = Feed_Description.DataType().(*primitives.BlobDataType)
)

func NewFeed(obj mesh.MeshObject) *Feed {
	return &Feed{mesh.NewFacade(obj)}
}

func AsFeed(obj mesh.MeshObject) (*Feed, error) {
	return mesh.As(obj, Feed_TYPE, NewFeed)
}

func (o *Feed) Title() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, Feed_Title)
}

func (o *Feed) SetTitle(v *primitives.BlobValue) error {
	return mesh.Set(o, Feed_Title, v)
}

func (o *Feed) Description() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, Feed_Description)
}

func (o *Feed) SetDescription(v *primitives.BlobValue) error {
	return mesh.Set(o, Feed_Description, v)
}
