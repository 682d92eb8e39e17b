package modelbase

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

type modelBase struct {
	lock         sync.RWMutex
	subjectAreas map[Identifier]*subjectArea
	order        []SubjectArea
	types        map[Identifier]MeshType
	roles        map[EntityType][]RoleType
}

var _ ModelBase = (*modelBase)(nil)

// New provides an empty model base.
func New() ModelBase {
	return &modelBase{
		subjectAreas: map[Identifier]*subjectArea{},
		types:        map[Identifier]MeshType{},
		roles:        map[EntityType][]RoleType{},
	}
}

func (m *modelBase) SubjectAreas() []SubjectArea {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return slices.Clone(m.order)
}

func (m *modelBase) rolesFor(t EntityType) []RoleType {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return slices.Clone(m.roles[t])
}

func (m *modelBase) LoadSubjectArea(spec *SubjectAreaSpecification) (SubjectArea, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.load(spec)
}

func (m *modelBase) LoadSubjectAreas(specs ...*SubjectAreaSpecification) ([]SubjectArea, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	index := map[string]*SubjectAreaSpecification{}
	for _, s := range specs {
		if index[s.Name] != nil {
			return nil, fmt.Errorf("subject area %q specified twice", s.Name)
		}
		index[s.Name] = s
	}

	var result []SubjectArea
	done := map[string]bool{}

	var load func(s *SubjectAreaSpecification, stack ...string) error
	load = func(s *SubjectAreaSpecification, stack ...string) error {
		if c := utils.Cycle(s.Name, stack...); c != nil {
			return fmt.Errorf("dependency cycle %s", strings.Join(c, " -> "))
		}
		if done[s.Name] {
			return nil
		}
		stack = append(stack, s.Name)
		for _, d := range s.Dependencies {
			if ds := index[d]; ds != nil {
				if err := load(ds, stack...); err != nil {
					return err
				}
			}
		}
		sa, err := m.load(s)
		if err != nil {
			return err
		}
		done[s.Name] = true
		result = append(result, sa)
		return nil
	}

	for _, s := range specs {
		if err := load(s); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (m *modelBase) FindSubjectArea(id Identifier) (SubjectArea, error) {
	return find[SubjectArea](m, id)
}

func (m *modelBase) FindEntityType(id Identifier) (EntityType, error) {
	return find[EntityType](m, id)
}

func (m *modelBase) FindPropertyType(id Identifier) (PropertyType, error) {
	return find[PropertyType](m, id)
}

func (m *modelBase) FindRelationshipType(id Identifier) (RelationshipType, error) {
	return find[RelationshipType](m, id)
}

func (m *modelBase) FindRoleType(id Identifier) (RoleType, error) {
	return find[RoleType](m, id)
}

func (m *modelBase) FindMeshType(id Identifier) (MeshType, error) {
	return find[MeshType](m, id)
}

func find[T MeshType](m *modelBase, id Identifier) (T, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return cast[T](m.types[id], id)
}

func cast[T MeshType](t MeshType, id Identifier) (T, error) {
	var _nil T

	if t == nil {
		return _nil, fmt.Errorf("%s %q: %w", kindOf[T](), id, ErrNotFound)
	}
	r, ok := t.(T)
	if !ok {
		return _nil, fmt.Errorf("%q is a %s, not a %s: %w", id, KindOf(t), kindOf[T](), ErrNotFound)
	}
	return r, nil
}

func kindOf[T MeshType]() string {
	var _nil T
	switch any(&_nil).(type) {
	case *SubjectArea:
		return "subject area"
	case *EntityType:
		return "entity type"
	case *PropertyType:
		return "property type"
	case *RelationshipType:
		return "relationship type"
	case *RoleType:
		return "role type"
	}
	return "mesh type"
}

// KindOf provides a readable kind name for a meta type.
func KindOf(t MeshType) string {
	switch t.(type) {
	case SubjectArea:
		return "subject area"
	case EntityType:
		return "entity type"
	case PropertyType:
		return "property type"
	case RelationshipType:
		return "relationship type"
	case RoleType:
		return "role type"
	}
	return "mesh type"
}
