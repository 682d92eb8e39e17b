package feeds

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type RssFeed struct {
	mesh.Facade
}

var RssFeed_TYPE = lookup[modelbase.EntityType]("RssFeed")

func NewRssFeed(obj mesh.MeshObject) *RssFeed {
	return &RssFeed{mesh.NewFacade(obj)}
}

func AsRssFeed(obj mesh.MeshObject) (*RssFeed, error) {
	return mesh.As(obj, RssFeed_TYPE, NewRssFeed)
}

func CreateRssFeed(f mesh.MeshObjectFactory) (*RssFeed, error) {
	return mesh.Create(f, RssFeed_TYPE, NewRssFeed)
}

func (o *RssFeed) Feed() *Feed {
	return NewFeed(o.MeshObject)
}

func (o *RssFeed) Title() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, Feed_Title)
}

func (o *RssFeed) SetTitle(v *primitives.BlobValue) error {
	return mesh.Set(o, Feed_Title, v)
}

func (o *RssFeed) Description() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, Feed_Description)
}

func (o *RssFeed) SetDescription(v *primitives.BlobValue) error {
	return mesh.Set(o, Feed_Description, v)
}
