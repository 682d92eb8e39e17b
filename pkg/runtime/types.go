package runtime

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// SchemeTypes maps type names to Go struct types and creates
// objects by type name.
type SchemeTypes[T Object] interface {
	CreateObject(typ string) (T, error)
}

// TypeScheme is a SchemeTypes accepting new type registrations.
type TypeScheme[T Object] interface {
	SchemeTypes[T]

	Register(name string, proto T) error
}

type types[E Object] struct {
	lock    sync.RWMutex
	structs map[string]reflect.Type
}

var _ TypeScheme[Object] = (*types[Object])(nil)

func newTypes[E Object]() *types[E] {
	return &types[E]{structs: map[string]reflect.Type{}}
}

// Register binds a type name to the struct type of the pointer proto.
// Registering the same struct type again is accepted.
func (s *types[E]) Register(name string, proto E) error {
	t := reflect.TypeOf(proto)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("prototype %T for %q must be a pointer to a struct", proto, name)
	}
	t = t.Elem()

	s.lock.Lock()
	defer s.lock.Unlock()
	if old, ok := s.structs[name]; ok && old != t {
		return fmt.Errorf("type name %q already used for %s", name, old)
	}
	s.structs[name] = t
	return nil
}

func (s *types[E]) CreateObject(typ string) (E, error) {
	var zero E

	s.lock.RLock()
	t, ok := s.structs[typ]
	s.lock.RUnlock()
	if !ok {
		return zero, fmt.Errorf("unknown object type %q", typ)
	}

	o := reflect.New(t).Interface().(E)
	o.SetType(typ)
	return o, nil
}

// ElementType constrains P to be the pointer type of T implementing Object.
type ElementType[P any] interface {
	Object
	*P
}

// Register registers the struct type T under the given name.
func Register[T any, P ElementType[T], E Object](s TypeScheme[E], name string) error {
	p, ok := any(P(new(T))).(E)
	if !ok {
		return fmt.Errorf("*%s does not implement %s", utils.TypeOf[T](), utils.TypeOf[E]())
	}
	return s.Register(name, p)
}

func MustRegister[T any, P ElementType[T], E Object](s TypeScheme[E], name string) {
	if err := Register[T, P, E](s, name); err != nil {
		panic(err)
	}
}
