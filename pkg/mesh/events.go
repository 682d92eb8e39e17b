package mesh

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/meshmodel/pkg/events"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

const (
	EVENT_CREATED          = "Created"
	EVENT_DELETED          = "Deleted"
	EVENT_PROPERTY_CHANGED = "PropertyChanged"
	EVENT_TYPES_ADDED      = "TypesAdded"
	EVENT_TYPES_REMOVED    = "TypesRemoved"
	EVENT_NEIGHBOR_ADDED   = "NeighborAdded"
	EVENT_NEIGHBOR_REMOVED = "NeighborRemoved"
	EVENT_ROLES_ADDED      = "RoleTypesAdded"
	EVENT_ROLES_REMOVED    = "RoleTypesRemoved"
)

var EventKinds = []string{
	EVENT_CREATED,
	EVENT_DELETED,
	EVENT_PROPERTY_CHANGED,
	EVENT_TYPES_ADDED,
	EVENT_TYPES_REMOVED,
	EVENT_NEIGHBOR_ADDED,
	EVENT_NEIGHBOR_REMOVED,
	EVENT_ROLES_ADDED,
	EVENT_ROLES_REMOVED,
}

// EventHandler consumes change events.
type EventHandler = events.EventHandler[*ChangeEvent]

// WatchRequest registers for the change events of a MeshBase.
// No kinds means all kinds. With Current the handler is ramped
// up with Created events for the existing objects.
type WatchRequest struct {
	MeshBase string   `json:"meshbase"`
	Kinds    []string `json:"kinds,omitempty"`
	Current  bool     `json:"current,omitempty"`
}

// ChangeEvent describes a committed change of a MeshObject.
// Events are routed by kind and MeshBase name.
type ChangeEvent struct {
	Kind     string               `json:"kind"`
	MeshBase string               `json:"meshbase"`
	Object   MeshObjectIdentifier `json:"object"`
	Time     utils.Timestamp      `json:"time"`

	Property string  `json:"property,omitempty"`
	OldValue *string `json:"oldValue,omitempty"`
	NewValue *string `json:"newValue,omitempty"`

	Types []modelbase.Identifier `json:"types,omitempty"`

	Neighbor MeshObjectIdentifier   `json:"neighbor,omitempty"`
	Roles    []modelbase.Identifier `json:"roles,omitempty"`
}

func (e *ChangeEvent) GetType() string {
	return e.Kind
}

func (e *ChangeEvent) GetNamespace() string {
	return e.MeshBase
}

func (e *ChangeEvent) String() string {
	switch e.Kind {
	case EVENT_PROPERTY_CHANGED:
		return fmt.Sprintf("%s %s/%s %s: %s -> %s", e.Kind, e.MeshBase, e.Object, e.Property, str(e.OldValue), str(e.NewValue))
	case EVENT_TYPES_ADDED, EVENT_TYPES_REMOVED:
		return fmt.Sprintf("%s %s/%s %s", e.Kind, e.MeshBase, e.Object, utils.Join(e.Types))
	case EVENT_NEIGHBOR_ADDED, EVENT_NEIGHBOR_REMOVED:
		return fmt.Sprintf("%s %s/%s %s", e.Kind, e.MeshBase, e.Object, e.Neighbor)
	case EVENT_ROLES_ADDED, EVENT_ROLES_REMOVED:
		return fmt.Sprintf("%s %s/%s %s: %s", e.Kind, e.MeshBase, e.Object, e.Neighbor, utils.Join(e.Roles))
	}
	return fmt.Sprintf("%s %s/%s", e.Kind, e.MeshBase, e.Object)
}

func str(s *string) string {
	if s == nil {
		return "null"
	}
	return fmt.Sprintf("%q", *s)
}

func NewEvent(kind string, meshbase string, id MeshObjectIdentifier, t utils.Timestamp) *ChangeEvent {
	return &ChangeEvent{
		Kind:     kind,
		MeshBase: meshbase,
		Object:   id,
		Time:     t,
	}
}

func newEvent(kind string, obj MeshObject) *ChangeEvent {
	return NewEvent(kind, obj.MeshBaseName(), obj.Identifier(), utils.NewTimestamp())
}

func NewCreatedEvent(obj MeshObject) *ChangeEvent {
	return newEvent(EVENT_CREATED, obj)
}

func NewDeletedEvent(obj MeshObject) *ChangeEvent {
	return newEvent(EVENT_DELETED, obj)
}

func NewPropertyChangedEvent(obj MeshObject, pt modelbase.PropertyType, old, new primitives.PropertyValue) *ChangeEvent {
	e := newEvent(EVENT_PROPERTY_CHANGED, obj)
	e.Property = pt.Identifier().String()
	e.OldValue = primitives.ToString(old)
	e.NewValue = primitives.ToString(new)
	return e
}

func newTypesEvent(kind string, obj MeshObject, types []modelbase.EntityType) *ChangeEvent {
	e := newEvent(kind, obj)
	for _, t := range types {
		e.Types = append(e.Types, t.Identifier())
	}
	slices.SortFunc(e.Types, modelbase.CompareIdentifier)
	return e
}

func NewTypesAddedEvent(obj MeshObject, types ...modelbase.EntityType) *ChangeEvent {
	return newTypesEvent(EVENT_TYPES_ADDED, obj, types)
}

func NewTypesRemovedEvent(obj MeshObject, types ...modelbase.EntityType) *ChangeEvent {
	return newTypesEvent(EVENT_TYPES_REMOVED, obj, types)
}

func NewNeighborAddedEvent(obj MeshObject, neighbor MeshObjectIdentifier) *ChangeEvent {
	e := newEvent(EVENT_NEIGHBOR_ADDED, obj)
	e.Neighbor = neighbor
	return e
}

func NewNeighborRemovedEvent(obj MeshObject, neighbor MeshObjectIdentifier) *ChangeEvent {
	e := newEvent(EVENT_NEIGHBOR_REMOVED, obj)
	e.Neighbor = neighbor
	return e
}

func newRolesEvent(kind string, obj MeshObject, neighbor MeshObjectIdentifier, roles []modelbase.RoleType) *ChangeEvent {
	e := newEvent(kind, obj)
	e.Neighbor = neighbor
	for _, r := range roles {
		e.Roles = append(e.Roles, r.Identifier())
	}
	slices.SortFunc(e.Roles, modelbase.CompareIdentifier)
	return e
}

func NewRoleTypesAddedEvent(obj MeshObject, neighbor MeshObjectIdentifier, roles ...modelbase.RoleType) *ChangeEvent {
	return newRolesEvent(EVENT_ROLES_ADDED, obj, neighbor, roles)
}

func NewRoleTypesRemovedEvent(obj MeshObject, neighbor MeshObjectIdentifier, roles ...modelbase.RoleType) *ChangeEvent {
	return newRolesEvent(EVENT_ROLES_REMOVED, obj, neighbor, roles)
}
