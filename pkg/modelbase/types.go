package modelbase

import (
	"cmp"
	"slices"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
)

type meshType struct {
	id          Identifier
	name        string
	userName    string
	description string
	sa          *subjectArea
}

func newMeshType(sa *subjectArea, local string, spec *TypeSpecification) meshType {
	return meshType{
		id:          NewIdentifier(sa.name, local),
		name:        spec.Name,
		userName:    spec.UserName,
		description: spec.Description,
		sa:          sa,
	}
}

func (t *meshType) Identifier() Identifier {
	return t.id
}

func (t *meshType) Name() string {
	return t.name
}

func (t *meshType) UserVisibleName() string {
	if t.userName == "" {
		return t.name
	}
	return t.userName
}

func (t *meshType) Description() string {
	return t.description
}

func (t *meshType) SubjectArea() SubjectArea {
	return t.sa
}

func (t *meshType) String() string {
	return string(t.id)
}

////////////////////////////////////////////////////////////////////////////////

type subjectArea struct {
	meshType
	mb            *modelBase
	spec          *SubjectAreaSpecification
	fingerprint   string
	dependencies  []SubjectArea
	entities      []EntityType
	relationships []RelationshipType
	types         map[Identifier]MeshType
}

var _ SubjectArea = (*subjectArea)(nil)

func (s *subjectArea) EntityTypes() []EntityType {
	return slices.Clone(s.entities)
}

func (s *subjectArea) RelationshipTypes() []RelationshipType {
	return slices.Clone(s.relationships)
}

func (s *subjectArea) Dependencies() []SubjectArea {
	return slices.Clone(s.dependencies)
}

func (s *subjectArea) Fingerprint() string {
	return s.fingerprint
}

func (s *subjectArea) Specification() *SubjectAreaSpecification {
	return s.spec
}

func (s *subjectArea) ModelBase() ModelBase {
	return s.mb
}

func mustLocal[T MeshType](s *subjectArea, name string) T {
	t, err := findLocal[T](s, name)
	if err != nil {
		panic(err)
	}
	return t
}

func findLocal[T MeshType](s *subjectArea, name string) (T, error) {
	return cast[T](s.types[s.id.Child(name)], s.id.Child(name))
}

func (s *subjectArea) MustEntityType(name string) EntityType {
	return mustLocal[EntityType](s, name)
}

func (s *subjectArea) MustPropertyType(name string) PropertyType {
	return mustLocal[PropertyType](s, name)
}

func (s *subjectArea) MustRelationshipType(name string) RelationshipType {
	return mustLocal[RelationshipType](s, name)
}

func (s *subjectArea) MustRoleType(name string) RoleType {
	return mustLocal[RoleType](s, name)
}

////////////////////////////////////////////////////////////////////////////////

type entityType struct {
	meshType
	abstract   bool
	supertypes []EntityType
	properties []PropertyType

	// closures
	allSupertypes []EntityType
	allProperties []PropertyType
}

var _ EntityType = (*entityType)(nil)

func (t *entityType) IsAbstract() bool {
	return t.abstract
}

func (t *entityType) DirectSupertypes() []EntityType {
	return slices.Clone(t.supertypes)
}

func (t *entityType) AllSupertypes() []EntityType {
	return slices.Clone(t.allSupertypes)
}

func (t *entityType) IsSubtypeOfOrEquals(o EntityType) bool {
	if o == nil {
		return false
	}
	if EntityType(t) == o {
		return true
	}
	return slices.Contains(t.allSupertypes, o)
}

func (t *entityType) LocalPropertyTypes() []PropertyType {
	return slices.Clone(t.properties)
}

func (t *entityType) AllPropertyTypes() []PropertyType {
	return slices.Clone(t.allProperties)
}

func (t *entityType) FindPropertyTypeByName(name string) PropertyType {
	for _, p := range t.allProperties {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func (t *entityType) LocalRoleTypes() []RoleType {
	return t.sa.mb.rolesFor(t)
}

func (t *entityType) AllRoleTypes() []RoleType {
	roles := t.LocalRoleTypes()
	for _, s := range t.allSupertypes {
		roles = append(roles, s.LocalRoleTypes()...)
	}
	return roles
}

// closure computes the transitive supertypes and properties.
// The supertypes must already be complete.
func (t *entityType) closure() {
	t.allSupertypes = nil
	for _, s := range t.supertypes {
		if !slices.Contains(t.allSupertypes, s) {
			t.allSupertypes = append(t.allSupertypes, s)
		}
	}
	for _, s := range t.supertypes {
		for _, ss := range s.AllSupertypes() {
			if !slices.Contains(t.allSupertypes, ss) {
				t.allSupertypes = append(t.allSupertypes, ss)
			}
		}
	}

	t.allProperties = slices.Clone(t.properties)
	for _, s := range t.allSupertypes {
		for _, p := range s.LocalPropertyTypes() {
			if !slices.Contains(t.allProperties, p) {
				t.allProperties = append(t.allProperties, p)
			}
		}
	}
	slices.SortStableFunc(t.allProperties, ComparePropertyTypes)
}

// ComparePropertyTypes orders by sequence number and name.
func ComparePropertyTypes(a, b PropertyType) int {
	if c := cmp.Compare(a.SequenceNumber(), b.SequenceNumber()); c != 0 {
		return c
	}
	return cmp.Compare(a.Name(), b.Name())
}

////////////////////////////////////////////////////////////////////////////////

type propertyType struct {
	meshType
	entity   EntityType
	dataType primitives.DataType
	def      primitives.PropertyValue
	optional bool
	readOnly bool
	seqno    float64
}

var _ PropertyType = (*propertyType)(nil)

func (p *propertyType) EntityType() EntityType {
	return p.entity
}

func (p *propertyType) DataType() primitives.DataType {
	return p.dataType
}

func (p *propertyType) DefaultValue() primitives.PropertyValue {
	return p.def
}

func (p *propertyType) IsOptional() bool {
	return p.optional
}

func (p *propertyType) IsReadOnly() bool {
	return p.readOnly
}

func (p *propertyType) SequenceNumber() float64 {
	return p.seqno
}

////////////////////////////////////////////////////////////////////////////////

type relationshipType struct {
	meshType
	source      *roleType
	destination *roleType
}

var _ RelationshipType = (*relationshipType)(nil)

func (r *relationshipType) Source() RoleType {
	return r.source
}

func (r *relationshipType) Destination() RoleType {
	return r.destination
}

////////////////////////////////////////////////////////////////////////////////

const (
	SOURCE_SUFFIX      = "-S"
	DESTINATION_SUFFIX = "-D"
)

type roleType struct {
	meshType
	relationship *relationshipType
	source       bool
	entity       EntityType
	multiplicity *primitives.MultiplicityValue
	refined      []RoleType
}

var _ RoleType = (*roleType)(nil)

func (r *roleType) RelationshipType() RelationshipType {
	return r.relationship
}

func (r *roleType) IsSource() bool {
	return r.source
}

func (r *roleType) EntityType() EntityType {
	return r.entity
}

func (r *roleType) Multiplicity() *primitives.MultiplicityValue {
	return r.multiplicity
}

func (r *roleType) Inverse() RoleType {
	if r.source {
		return r.relationship.destination
	}
	return r.relationship.source
}

func (r *roleType) RefinedRoleTypes() []RoleType {
	return slices.Clone(r.refined)
}
