package feeds

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// The type is abstract, objects are blessed with one of its subtypes.
type FeedItem struct {
	mesh.Facade
}

var FeedItem_TYPE = lookup[modelbase.EntityType]("FeedItem")

var (
	FeedItem_Contains_DESTINATION = Contains_DESTINATION
)

const FeedItem_Title_NAME = "Title"

var (
	FeedItem_Title      = lookup[modelbase.PropertyType]("FeedItem_Title")
	FeedItem_Title_TYPE = FeedItem_Title.DataType().(*primitives.BlobDataType)
)

const FeedItem_Content_NAME = "Content"

var (
	FeedItem_Content      = lookup[modelbase.PropertyType]("FeedItem_Content")
	FeedItem_Content_TYPE = FeedItem_Content.DataType().(*primitives.BlobDataType)
)

func NewFeedItem(obj mesh.MeshObject) *FeedItem {
	return &FeedItem{mesh.NewFacade(obj)}
}

func AsFeedItem(obj mesh.MeshObject) (*FeedItem, error) {
	return mesh.As(obj, FeedItem_TYPE, NewFeedItem)
}

func (o *FeedItem) Title() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, FeedItem_Title)
}

func (o *FeedItem) SetTitle(v *primitives.BlobValue) error {
	return mesh.Set(o, FeedItem_Title, v)
}

func (o *FeedItem) Content() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, FeedItem_Content)
}

func (o *FeedItem) SetContent(v *primitives.BlobValue) error {
	return mesh.Set(o, FeedItem_Content, v)
}
