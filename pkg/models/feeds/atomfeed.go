package feeds

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type AtomFeed struct {
	mesh.Facade
}

var AtomFeed_TYPE = lookup[modelbase.EntityType]("AtomFeed")

const AtomFeed_Subtitle_NAME = "Subtitle"

var (
	AtomFeed_Subtitle      = lookup[modelbase.PropertyType]("AtomFeed_Subtitle")
	AtomFeed_Subtitle_TYPE = AtomFeed_Subtitle.DataType().(*primitives.BlobDataType)
)

func NewAtomFeed(obj mesh.MeshObject) *AtomFeed {
	return &AtomFeed{mesh.NewFacade(obj)}
}

func AsAtomFeed(obj mesh.MeshObject) (*AtomFeed, error) {
	return mesh.As(obj, AtomFeed_TYPE, NewAtomFeed)
}

func CreateAtomFeed(f mesh.MeshObjectFactory) (*AtomFeed, error) {
	return mesh.Create(f, AtomFeed_TYPE, NewAtomFeed)
}

func (o *AtomFeed) Feed() *Feed {
	return NewFeed(o.MeshObject)
}

func (o *AtomFeed) Title() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, Feed_Title)
}

func (o *AtomFeed) SetTitle(v *primitives.BlobValue) error {
	return mesh.Set(o, Feed_Title, v)
}

func (o *AtomFeed) Description() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, Feed_Description)
}

func (o *AtomFeed) SetDescription(v *primitives.BlobValue) error {
	return mesh.Set(o, Feed_Description, v)
}

func (o *AtomFeed) Subtitle() (*primitives.BlobValue, error) {
	return mesh.Get[*primitives.BlobValue](o, AtomFeed_Subtitle)
}

func (o *AtomFeed) SetSubtitle(v *primitives.BlobValue) error {
	return mesh.Set(o, AtomFeed_Subtitle, v)
}
