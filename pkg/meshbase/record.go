package meshbase

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/meshmodel/pkg/database"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/runtime"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// TYPE_MESHOBJECT is the database type of persisted MeshObjects.
// The namespace is the name of the MeshBase.
const TYPE_MESHOBJECT = "MeshObject"

type Object interface {
	database.Object
	database.GenerationAccess
}

var Scheme = database.NewScheme[Object]()

func init() {
	runtime.MustRegister[MeshObjectRecord, *MeshObjectRecord, Object](Scheme, TYPE_MESHOBJECT)
}

// MeshObjectRecord is the persisted state of a MeshObject.
type MeshObjectRecord struct {
	database.GenerationObjectMeta `json:",inline"`

	Spec MeshObjectState `json:"spec"`
}

var _ Object = (*MeshObjectRecord)(nil)

// MeshObjectState holds the blessed types and the property
// values in their string representation. A nil value is null.
// Neighbors maps related objects to the role types played by
// this object in the relationship. Both ends of a relationship
// are stored.
type MeshObjectState struct {
	Types      []modelbase.Identifier                               `json:"types,omitempty"`
	Properties map[modelbase.Identifier]*string                     `json:"properties,omitempty"`
	Neighbors  map[mesh.MeshObjectIdentifier][]modelbase.Identifier `json:"neighbors,omitempty"`

	Created utils.Timestamp `json:"created"`
	Updated utils.Timestamp `json:"updated"`
	Read    utils.Timestamp `json:"read"`
}

func NewMeshObjectRecord(ns, name string) *MeshObjectRecord {
	return &MeshObjectRecord{
		GenerationObjectMeta: database.NewGenerationObjectMeta(TYPE_MESHOBJECT, ns, name),
	}
}

// record provides the persistence representation.
// It must be called under lock.
func (o *meshObject) record() *MeshObjectRecord {
	r := NewMeshObjectRecord(o.mb.name, string(o.id))
	r.SetGeneration(o.generation)
	for _, t := range o.types {
		r.Spec.Types = append(r.Spec.Types, t.Identifier())
	}
	slices.SortFunc(r.Spec.Types, modelbase.CompareIdentifier)
	r.Spec.Properties = map[modelbase.Identifier]*string{}
	for pt, v := range o.properties {
		r.Spec.Properties[pt.Identifier()] = primitives.ToString(v)
	}
	if len(o.neighbors) > 0 {
		r.Spec.Neighbors = map[mesh.MeshObjectIdentifier][]modelbase.Identifier{}
		for id, roles := range o.neighbors {
			ids := []modelbase.Identifier{}
			for _, rt := range roles {
				ids = append(ids, rt.Identifier())
			}
			slices.SortFunc(ids, modelbase.CompareIdentifier)
			r.Spec.Neighbors[id] = ids
		}
	}
	r.Spec.Created = o.created
	r.Spec.Updated = o.updated
	r.Spec.Read = o.read
	return r
}

// apply sets the state of the object from a persisted record.
// It must be called under lock.
func (o *meshObject) apply(mb modelbase.ModelBase, r *MeshObjectRecord) error {
	var types []modelbase.EntityType
	for _, id := range r.Spec.Types {
		et, err := mb.FindEntityType(id)
		if err != nil {
			return fmt.Errorf("mesh object %s: %w", o.id, err)
		}
		types = append(types, et)
	}

	props := map[modelbase.PropertyType]primitives.PropertyValue{}
	for _, pt := range propertyTypes(types) {
		s, ok := r.Spec.Properties[pt.Identifier()]
		if !ok {
			props[pt] = pt.DefaultValue()
			continue
		}
		if s == nil {
			props[pt] = nil
			continue
		}
		v, err := pt.DataType().Parse(*s)
		if err != nil {
			return fmt.Errorf("mesh object %s: property %s: %w", o.id, pt.Identifier(), err)
		}
		props[pt] = v
	}

	neighbors := map[mesh.MeshObjectIdentifier][]modelbase.RoleType{}
	for id, ids := range r.Spec.Neighbors {
		roles := []modelbase.RoleType{}
		for _, rid := range ids {
			rt, err := mb.FindRoleType(rid)
			if err != nil {
				return fmt.Errorf("mesh object %s: neighbor %s: %w", o.id, id, err)
			}
			roles = append(roles, rt)
		}
		neighbors[id] = roles
	}

	o.types = types
	o.properties = props
	o.neighbors = neighbors
	o.generation = r.GetGeneration()
	o.created = r.Spec.Created
	o.updated = r.Spec.Updated
	o.read = r.Spec.Read
	o.loaded = true
	o.dead = false
	return nil
}

// propertyTypes provides the property types of a set of entity types
// ordered by sequence number and name.
func propertyTypes(types []modelbase.EntityType) []modelbase.PropertyType {
	var result []modelbase.PropertyType
	for _, t := range types {
		result = utils.AppendUnique(result, t.AllPropertyTypes()...)
	}
	slices.SortStableFunc(result, modelbase.ComparePropertyTypes)
	return result
}
