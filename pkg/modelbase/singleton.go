package modelbase

import (
	"sync"
)

var (
	singletonLock sync.RWMutex
	singleton     ModelBase
)

func init() {
	singleton = New()
}

// SetSingleton replaces the process wide model base.
// It returns the previous one.
func SetSingleton(mb ModelBase) ModelBase {
	singletonLock.Lock()
	defer singletonLock.Unlock()
	old := singleton
	singleton = mb
	return old
}

// Singleton provides the process wide model base.
// It panics if none is set.
func Singleton() ModelBase {
	singletonLock.RLock()
	defer singletonLock.RUnlock()
	if singleton == nil {
		panic(ErrNoSingleton)
	}
	return singleton
}

// MustLoadSubjectArea loads a serialized subject area into the
// process wide model base. It is intended for package initialization.
func MustLoadSubjectArea(data []byte) SubjectArea {
	spec, err := ParseSubjectArea(data)
	if err != nil {
		panic(err)
	}
	sa, err := Singleton().LoadSubjectArea(spec)
	if err != nil {
		panic(err)
	}
	return sa
}

// MustFind looks up a meta type of the expected kind in the
// process wide model base.
func MustFind[T MeshType](id Identifier) T {
	t, err := Singleton().FindMeshType(id)
	if err == nil {
		var r T
		r, err = cast[T](t, id)
		if err == nil {
			return r
		}
	}
	panic(err)
}

func lookup[T MeshType](id Identifier, f func(Identifier) (T, error)) T {
	t, err := f(id)
	if err != nil {
		log.LogError(err, "meta type lookup failed for {{id}}", "id", id)
	}
	return t
}

func FindSubjectArea(id Identifier) SubjectArea {
	return lookup(id, Singleton().FindSubjectArea)
}

func FindEntityType(id Identifier) EntityType {
	return lookup(id, Singleton().FindEntityType)
}

func FindPropertyType(id Identifier) PropertyType {
	return lookup(id, Singleton().FindPropertyType)
}

func FindRelationshipType(id Identifier) RelationshipType {
	return lookup(id, Singleton().FindRelationshipType)
}

func FindRoleType(id Identifier) RoleType {
	return lookup(id, Singleton().FindRoleType)
}
