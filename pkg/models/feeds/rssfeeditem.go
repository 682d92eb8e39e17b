package feeds

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type RssFeedItem struct {
	mesh.Facade
}

var RssFeedItem_TYPE = lookup[modelbase.EntityType]("RssFeedItem")

func NewRssFeedItem(obj mesh.MeshObject) *RssFeedItem {
	return &RssFeedItem{mesh.NewFacade(obj)}
}

func AsRssFeedItem(obj mesh.MeshObject) (*RssFeedItem, error) {
	return mesh.As(obj, RssFeedItem_TYPE, NewRssFeedItem)
}

func CreateRssFeedItem(f mesh.MeshObjectFactory) (*RssFeedItem, error) {
	return mesh.Create(f, RssFeedItem_TYPE, NewRssFeedItem)
}

func (o *RssFeedItem) FeedItem() *FeedItem {
	return NewFeedItem(o.MeshObject)
}

func (o *RssFeedItem) Title() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, FeedItem_Title)
}

func (o *RssFeedItem) SetTitle(v *primitives.BlobValue) error {
	return mesh.Set(o, FeedItem_Title, v)
}

func (o *RssFeedItem) Content() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, FeedItem_Content)
}

func (o *RssFeedItem) SetContent(v *primitives.BlobValue) error {
	return mesh.Set(o, FeedItem_Content, v)
}
