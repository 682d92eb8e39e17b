package feeds

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type AtomFeedItem struct {
	mesh.Facade
}

var AtomFeedItem_TYPE = lookup[modelbase.EntityType]("AtomFeedItem")

const AtomFeedItem_Summary_NAME = "Summary"

var (
	AtomFeedItem_Summary      = lookup[modelbase.PropertyType]("AtomFeedItem_Summary")
	AtomFeedItem_Summary_TYPE = AtomFeedItem_Summary.DataType().(*primitives.BlobDataType)
)

func NewAtomFeedItem(obj mesh.MeshObject) *AtomFeedItem {
	return &AtomFeedItem{mesh.NewFacade(obj)}
}

func AsAtomFeedItem(obj mesh.MeshObject) (*AtomFeedItem, error) {
	return mesh.As(obj, AtomFeedItem_TYPE, NewAtomFeedItem)
}

func CreateAtomFeedItem(f mesh.MeshObjectFactory) (*AtomFeedItem, error) {
	return mesh.Create(f, AtomFeedItem_TYPE, NewAtomFeedItem)
}

func (o *AtomFeedItem) FeedItem() *FeedItem {
	return NewFeedItem(o.MeshObject)
}

func (o *AtomFeedItem) Title() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, FeedItem_Title)
}

func (o *AtomFeedItem) SetTitle(v *primitives.BlobValue) error {
	return mesh.Set(o, FeedItem_Title, v)
}

func (o *AtomFeedItem) Content() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, FeedItem_Content)
}

func (o *AtomFeedItem) SetContent(v *primitives.BlobValue) error {
	return mesh.Set(o, FeedItem_Content, v)
}

func (o *AtomFeedItem) Summary() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, AtomFeedItem_Summary)
}

func (o *AtomFeedItem) SetSummary(v *primitives.BlobValue) error {
	return mesh.Set(o, AtomFeedItem_Summary, v)
}
