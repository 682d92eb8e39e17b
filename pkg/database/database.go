package database

import (
	"github.com/mandelsoft/meshmodel/pkg/runtime"
)

type SchemeTypes[O Object] interface {
	runtime.SchemeTypes[O]
}

// Database is a generic object store. Objects are identified by
// type, namespace and name. Objects featuring a generation
// (GenerationAccess) are checked for concurrent modification
// on write.
type Database[O Object] interface {
	SchemeTypes() SchemeTypes[O]

	HandlerRegistration
	ObjectLister
	ListObjects(typ string, ns string) ([]O, error)

	GetObject(ObjectId) (O, error)
	SetObject(O) error
	DeleteObject(ObjectId) error
}

// BatchWriter is implemented by databases able to store and delete
// a set of objects atomically. Either all changes are applied or
// none. Deleting an object that does not exist is no error.
type BatchWriter[O Object] interface {
	WriteBatch(set []O, del []ObjectId) error
}
