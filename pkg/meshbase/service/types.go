package service

import (
	"slices"

	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// ObjectView is the external representation of a MeshObject.
// Property values are given by their string representation,
// nil means null.
type ObjectView struct {
	Identifier mesh.MeshObjectIdentifier        `json:"identifier"`
	MeshBase   string                           `json:"meshbase"`
	Types      []modelbase.Identifier           `json:"types"`
	Properties map[modelbase.Identifier]*string `json:"properties,omitempty"`
	// Neighbors maps related objects to the role types played
	// by this object.
	Neighbors map[mesh.MeshObjectIdentifier][]modelbase.Identifier `json:"neighbors,omitempty"`
	Created   utils.Timestamp                                      `json:"created"`
	Updated   utils.Timestamp                                      `json:"updated"`
	Read      utils.Timestamp                                      `json:"read"`
}

// CreateRequest creates a new MeshObject. Property keys are property type
// identifiers or names local to one of the given types.
type CreateRequest struct {
	Types      []modelbase.Identifier `json:"types"`
	Properties map[string]*string     `json:"properties,omitempty"`
}

// UpdateRequest modifies a MeshObject. The steps are executed in the
// order bless, relate, unrelate, unbless and setting the properties.
type UpdateRequest struct {
	Bless      []modelbase.Identifier      `json:"bless,omitempty"`
	Relate     []Relation                  `json:"relate,omitempty"`
	Unrelate   []mesh.MeshObjectIdentifier `json:"unrelate,omitempty"`
	Unbless    []modelbase.Identifier      `json:"unbless,omitempty"`
	Properties map[string]*string          `json:"properties,omitempty"`
}

// Relation relates a neighbor, if not yet related, and blesses the
// relationship with role types for the updated object.
type Relation struct {
	Neighbor mesh.MeshObjectIdentifier `json:"neighbor"`
	Roles    []modelbase.Identifier    `json:"roles,omitempty"`
}

type SubjectAreaInfo struct {
	Name         modelbase.Identifier   `json:"name"`
	UserName     string                 `json:"userName,omitempty"`
	Fingerprint  string                 `json:"fingerprint"`
	Dependencies []modelbase.Identifier `json:"dependencies,omitempty"`
}

type Items[O any] struct {
	Items []O `json:"items"`
}

type Error struct {
	Error string `json:"error"`
}

// NewObjectView provides the view of an object. Reading the
// properties is subject to access control.
func NewObjectView(obj mesh.MeshObject) (*ObjectView, error) {
	v := &ObjectView{
		Identifier: obj.Identifier(),
		MeshBase:   obj.MeshBaseName(),
		Properties: map[modelbase.Identifier]*string{},
	}
	for _, t := range obj.Types() {
		v.Types = append(v.Types, t.Identifier())
	}
	for _, pt := range obj.PropertyTypes() {
		val, err := obj.GetPropertyValue(pt)
		if err != nil {
			return nil, err
		}
		v.Properties[pt.Identifier()] = primitives.ToString(val)
	}
	neighbors, err := obj.NeighborMeshObjects()
	if err != nil {
		return nil, err
	}
	for _, n := range neighbors {
		roles, err := obj.RoleTypes(n)
		if err != nil {
			return nil, err
		}
		if v.Neighbors == nil {
			v.Neighbors = map[mesh.MeshObjectIdentifier][]modelbase.Identifier{}
		}
		ids := []modelbase.Identifier{}
		for _, r := range roles {
			ids = append(ids, r.Identifier())
		}
		slices.SortFunc(ids, modelbase.CompareIdentifier)
		v.Neighbors[n.Identifier()] = ids
	}
	v.Created = obj.TimeCreated()
	v.Updated = obj.TimeUpdated()
	v.Read = obj.TimeRead()
	return v, nil
}

func NewSubjectAreaInfo(sa modelbase.SubjectArea) *SubjectAreaInfo {
	i := &SubjectAreaInfo{
		Name:        sa.Identifier(),
		UserName:    sa.UserVisibleName(),
		Fingerprint: sa.Fingerprint(),
	}
	for _, d := range sa.Dependencies() {
		i.Dependencies = append(i.Dependencies, d.Identifier())
	}
	return i
}
