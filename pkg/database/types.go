package database

import (
	"errors"
	"fmt"

	"github.com/mandelsoft/meshmodel/pkg/runtime"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

var (
	ErrModified = errors.New("object modified")
	ErrNotExist = errors.New("object not found")
)

type Scheme[O Object] interface {
	runtime.Scheme[O]
}

type Encoding[O Object] interface {
	runtime.Encoding[O]
}

type TypeScheme[O Object] interface {
	runtime.TypeScheme[O]
}

// NewScheme provides a YAML based scheme for records
// carrying their type name in the field "type".
func NewScheme[O Object]() Scheme[O] {
	return runtime.NewYAMLScheme[O](runtime.TypeExtractorFor[runtime.ObjectMeta]())
}

// MustRegisterType registers the Go type T under its own type name.
func MustRegisterType[T any, O Object, P runtime.ElementType[T]](s TypeScheme[O]) {
	runtime.MustRegister[T, P, O](s, utils.TypeOf[T]().Name())
}

// ObjectId identifies a record by type, namespace and name.
type ObjectId interface {
	runtime.TypeAccessor
	GetNamespace() string
	GetName() string
}

// Object is a record stored in a Database.
type Object interface {
	ObjectId
	runtime.Object
	SetName(string)
	SetNamespace(string)
}

// GenerationAccess is implemented by records featuring a generation
// number. Databases use it to detect concurrent modifications.
type GenerationAccess interface {
	GetGeneration() int64
	SetGeneration(int64)
}

// GetGeneration returns the generation of a record or -1 if
// the record has none.
func GetGeneration(o Object) int64 {
	if g, ok := o.(GenerationAccess); ok {
		return g.GetGeneration()
	}
	return -1
}

// ObjectMeta is the inline id part of a serialized record.
type ObjectMeta struct {
	runtime.ObjectMeta `json:",inline"`
	Namespace          string `json:"namespace"`
	Name               string `json:"name"`
}

var _ Object = (*ObjectMeta)(nil)

func (o *ObjectMeta) GetName() string          { return o.Name }
func (o *ObjectMeta) GetNamespace() string     { return o.Namespace }
func (o *ObjectMeta) SetName(name string)      { o.Name = name }
func (o *ObjectMeta) SetNamespace(name string) { o.Namespace = name }

// GenerationObjectMeta is the inline meta part of records
// with optimistic locking.
type GenerationObjectMeta struct {
	ObjectMeta `json:",inline"`
	Generation int64 `json:"generation"`
}

var _ GenerationAccess = (*GenerationObjectMeta)(nil)

func NewGenerationObjectMeta(typ, ns, name string) GenerationObjectMeta {
	return GenerationObjectMeta{
		ObjectMeta: ObjectMeta{
			ObjectMeta: runtime.ObjectMeta{Type: typ},
			Namespace:  ns,
			Name:       name,
		},
	}
}

func (g *GenerationObjectMeta) GetGeneration() int64  { return g.Generation }
func (g *GenerationObjectMeta) SetGeneration(n int64) { g.Generation = n }

////////////////////////////////////////////////////////////////////////////////

type objectid struct {
	kind      string
	namespace string
	name      string
}

func (o objectid) GetType() string      { return o.kind }
func (o objectid) GetNamespace() string { return o.namespace }
func (o objectid) GetName() string      { return o.name }
func (o objectid) String() string       { return StringId(o) }

// NewObjectId provides a comparable object id usable as map key.
func NewObjectId(typ, ns, name string) ObjectId {
	return objectid{typ, ns, name}
}

func NewObjectIdFor(id ObjectId) ObjectId {
	return NewObjectId(id.GetType(), id.GetNamespace(), id.GetName())
}

func EqualObjectId(a, b ObjectId) bool {
	return a.GetType() == b.GetType() &&
		a.GetNamespace() == b.GetNamespace() &&
		a.GetName() == b.GetName()
}

func StringId(a ObjectId) string {
	return fmt.Sprintf("%s/%s/%s", a.GetType(), a.GetNamespace(), a.GetName())
}
