package bookmark

import (
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// BookmarkCollection is the facade for org.infogrid.model.Bookmark/BookmarkCollection: a collection of book marks.
type BookmarkCollection struct {
	mesh.Facade
}

var BookmarkCollection_TYPE = lookup[modelbase.EntityType]("BookmarkCollection")

var (
	BookmarkCollection_CollectsAny_SOURCE = CollectsAny_SOURCE
	BookmarkCollection_Collects_SOURCE    = Collects_SOURCE
	BookmarkCollection_Uses_DESTINATION   = Uses_DESTINATION
)

const BookmarkCollection_Name_NAME = "Name"

var (
	BookmarkCollection_Name      = lookup[modelbase.PropertyType]("BookmarkCollection_Name")
	BookmarkCollection_Name_TYPE = BookmarkCollection_Name.DataType()
)

func NewBookmarkCollection(obj mesh.MeshObject) *BookmarkCollection {
	return &BookmarkCollection{mesh.NewFacade(obj)}
}

func AsBookmarkCollection(obj mesh.MeshObject) (*BookmarkCollection, error) {
	return mesh.As(obj, BookmarkCollection_TYPE, NewBookmarkCollection)
}

func CreateBookmarkCollection(f mesh.MeshObjectFactory) (*BookmarkCollection, error) {
	return mesh.Create(f, BookmarkCollection_TYPE, NewBookmarkCollection)
}

func (o *BookmarkCollection) Name() (*primitives.StringValue, error) {
	return mesh.Get[*primitives.StringValue](o, BookmarkCollection_Name)
}

func (o *BookmarkCollection) SetName(v *primitives.StringValue) error {
	return mesh.Set(o, BookmarkCollection_Name, v)
}
