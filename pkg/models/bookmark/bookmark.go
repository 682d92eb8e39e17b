package bookmark

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// Bookmark is the facade for org.infogrid.model.Bookmark/Bookmark: a book mark referring to an arbitrary object.
type Bookmark struct {
	mesh.Facade
}

var Bookmark_TYPE = lookup[modelbase.EntityType]("Bookmark")

var (
	Bookmark_Collects_DESTINATION = Collects_DESTINATION
	Bookmark_Bookmarks_SOURCE     = Bookmarks_SOURCE
)

const Bookmark_Name_NAME = "Name"

var (
	Bookmark_Name      = lookup[modelbase.PropertyType]("Bookmark_Name")
	Bookmark_Name_TYPE = Bookmark_Name.DataType()
)

const Bookmark_SequenceNumber_NAME = "SequenceNumber"

var (
	Bookmark_SequenceNumber      = lookup[modelbase.PropertyType]("Bookmark_SequenceNumber")
	Bookmark_SequenceNumber_TYPE = Bookmark_SequenceNumber.DataType()
)

func NewBookmark(obj mesh.MeshObject) *Bookmark {
	return &Bookmark{mesh.NewFacade(obj)}
}

func AsBookmark(obj mesh.MeshObject) (*Bookmark, error) {
	return mesh.As(obj, Bookmark_TYPE, NewBookmark)
}

func CreateBookmark(f mesh.MeshObjectFactory) (*Bookmark, error) {
	return mesh.Create(f, Bookmark_TYPE, NewBookmark)
}

func (o *Bookmark) Name() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, Bookmark_Name)
}

func (o *Bookmark) SetName(v *primitives.StringValue) error {
	return mesh.Set(o, Bookmark_Name, v)
}

func (o *Bookmark) SequenceNumber() (*primitives.FloatValue, error) {
	return mesh.Get[*primitives.FloatValue](o, Bookmark_SequenceNumber)
}

func (o *Bookmark) SetSequenceNumber(v *primitives.FloatValue) error {
	return mesh.Set(o, Bookmark_SequenceNumber, v)
}
