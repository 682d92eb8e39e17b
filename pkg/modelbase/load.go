package modelbase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// loader builds a subject area from its specification.
// Nothing is registered in the model base before the complete
// subject area has been validated.
type loader struct {
	mb   *modelBase
	spec *SubjectAreaSpecification
	sa   *subjectArea

	entities map[string]*entityType
	roles    map[EntityType][]RoleType
}

// load must be called under write lock.
func (m *modelBase) load(spec *SubjectAreaSpecification) (SubjectArea, error) {
	fp := utils.HashData(spec)
	if old := m.subjectAreas[Identifier(spec.Name)]; old != nil {
		if old.fingerprint == fp {
			log.Debug("subject area {{name}} already loaded", "name", spec.Name)
			return old, nil
		}
		return nil, fmt.Errorf("subject area %q already loaded with different content", spec.Name)
	}

	l := &loader{
		mb:       m,
		spec:     spec,
		entities: map[string]*entityType{},
		roles:    map[EntityType][]RoleType{},
	}
	sa, err := l.load(fp)
	if err != nil {
		return nil, fmt.Errorf("subject area %q: %w", spec.Name, err)
	}

	m.subjectAreas[sa.id] = sa
	m.order = append(m.order, sa)
	for id, t := range sa.types {
		m.types[id] = t
	}
	for t, r := range l.roles {
		m.roles[t] = append(m.roles[t], r...)
	}
	log.Info("loaded subject area {{name}} ({{entities}} entity types, {{relationships}} relationship types)",
		"name", sa.name, "entities", len(sa.entities), "relationships", len(sa.relationships))
	return sa, nil
}

func (l *loader) load(fp string) (*subjectArea, error) {
	spec := l.spec
	if err := checkName(spec.Name, "."); err != nil {
		return nil, err
	}

	sa := &subjectArea{
		mb:          l.mb,
		spec:        spec,
		fingerprint: fp,
		types:       map[Identifier]MeshType{},
	}
	sa.meshType = meshType{
		id:          Identifier(spec.Name),
		name:        spec.Name,
		userName:    spec.UserName,
		description: spec.Description,
		sa:          sa,
	}
	l.sa = sa
	sa.types[sa.id] = sa

	for _, d := range spec.Dependencies {
		dep := l.mb.subjectAreas[Identifier(d)]
		if dep == nil {
			return nil, fmt.Errorf("dependency %q: %w", d, ErrNotFound)
		}
		sa.dependencies = append(sa.dependencies, dep)
	}

	for i := range spec.EntityTypes {
		if err := l.createEntityType(&spec.EntityTypes[i]); err != nil {
			return nil, err
		}
	}
	for i := range spec.EntityTypes {
		if err := l.resolveSupertypes(&spec.EntityTypes[i]); err != nil {
			return nil, err
		}
	}
	if err := l.checkCycles(); err != nil {
		return nil, err
	}
	for i := range spec.EntityTypes {
		if err := l.createPropertyTypes(&spec.EntityTypes[i]); err != nil {
			return nil, err
		}
	}
	if err := l.closures(); err != nil {
		return nil, err
	}
	for i := range spec.RelationshipTypes {
		if err := l.createRelationshipType(&spec.RelationshipTypes[i]); err != nil {
			return nil, err
		}
	}
	for i := range spec.RelationshipTypes {
		if err := l.resolveRefinements(&spec.RelationshipTypes[i]); err != nil {
			return nil, err
		}
	}
	return sa, nil
}

func checkName(name string, extra string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	for _, c := range name {
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || strings.ContainsRune(extra, c)) {
			return fmt.Errorf("invalid character %q in name %q", c, name)
		}
	}
	return nil
}

func (l *loader) register(t MeshType) error {
	if old := l.sa.types[t.Identifier()]; old != nil {
		return fmt.Errorf("%s %q conflicts with %s", KindOf(t), t.Identifier(), KindOf(old))
	}
	l.sa.types[t.Identifier()] = t
	return nil
}

func (l *loader) createEntityType(spec *EntityTypeSpecification) error {
	if err := checkName(spec.Name, ""); err != nil {
		return fmt.Errorf("entity type: %w", err)
	}
	et := &entityType{
		meshType: newMeshType(l.sa, spec.Name, &spec.TypeSpecification),
		abstract: spec.Abstract,
	}
	if err := l.register(et); err != nil {
		return err
	}
	l.entities[spec.Name] = et
	l.sa.entities = append(l.sa.entities, et)
	return nil
}

// resolveEntityType resolves a local name or the identifier of an
// entity type of a dependency.
func (l *loader) resolveEntityType(name string) (EntityType, error) {
	id := Identifier(name)
	if id.IsSubjectArea() {
		if et := l.entities[name]; et != nil {
			return et, nil
		}
		return nil, fmt.Errorf("entity type %q: %w", name, ErrNotFound)
	}
	if id.SubjectArea() == l.sa.id {
		if et := l.entities[id.LocalName()]; et != nil {
			return et, nil
		}
		return nil, fmt.Errorf("entity type %q: %w", name, ErrNotFound)
	}
	if !slices.ContainsFunc(l.sa.dependencies, func(d SubjectArea) bool { return d.Identifier() == id.SubjectArea() }) {
		return nil, fmt.Errorf("entity type %q: subject area %q is no declared dependency", name, id.SubjectArea())
	}
	return cast[EntityType](l.mb.types[id], id)
}

func (l *loader) resolveSupertypes(spec *EntityTypeSpecification) error {
	et := l.entities[spec.Name]
	for _, s := range spec.Supertypes {
		st, err := l.resolveEntityType(s)
		if err != nil {
			return fmt.Errorf("supertype of entity type %q: %w", spec.Name, err)
		}
		if slices.Contains(et.supertypes, st) {
			return fmt.Errorf("entity type %q: duplicate supertype %q", spec.Name, s)
		}
		et.supertypes = append(et.supertypes, st)
	}
	return nil
}

func (l *loader) checkCycles() error {
	var check func(et EntityType, stack ...Identifier) error
	check = func(et EntityType, stack ...Identifier) error {
		if c := utils.Cycle(et.Identifier(), stack...); c != nil {
			return fmt.Errorf("inheritance cycle %s", utils.Join(c, " -> "))
		}
		local, ok := et.(*entityType)
		if !ok || local.sa != l.sa {
			return nil
		}
		stack = append(stack, et.Identifier())
		for _, s := range local.supertypes {
			if err := check(s, stack...); err != nil {
				return err
			}
		}
		return nil
	}
	for _, et := range l.sa.entities {
		if err := check(et); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) createPropertyTypes(spec *EntityTypeSpecification) error {
	et := l.entities[spec.Name]
	for i := range spec.Properties {
		ps := &spec.Properties[i]
		pt, err := l.createPropertyType(et, ps)
		if err != nil {
			return fmt.Errorf("property %q of entity type %q: %w", ps.Name, spec.Name, err)
		}
		if err := l.register(pt); err != nil {
			return err
		}
		et.properties = append(et.properties, pt)
	}
	return nil
}

func (l *loader) createPropertyType(et *entityType, spec *PropertyTypeSpecification) (*propertyType, error) {
	if err := checkName(spec.Name, ""); err != nil {
		return nil, err
	}
	local := spec.ID
	if local == "" {
		local = et.name + "_" + spec.Name
	} else if err := checkName(local, ""); err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}

	dt, err := spec.Type.Create()
	if err != nil {
		return nil, err
	}
	pt := &propertyType{
		meshType: newMeshType(l.sa, local, &spec.TypeSpecification),
		entity:   et,
		dataType: dt,
		optional: spec.Optional,
		readOnly: spec.ReadOnly,
		seqno:    spec.SequenceNumber,
	}
	if spec.Default != nil {
		pt.def, err = dt.Parse(spec.Default.String())
		if err != nil {
			return nil, fmt.Errorf("default value: %w", err)
		}
		if err := dt.Conforms(pt.def); err != nil {
			return nil, fmt.Errorf("default value: %w", err)
		}
	} else if !spec.Optional {
		return nil, fmt.Errorf("mandatory property requires a default value")
	}
	return pt, nil
}

func (l *loader) closures() error {
	done := map[*entityType]bool{}

	var complete func(et *entityType)
	complete = func(et *entityType) {
		if done[et] {
			return
		}
		for _, s := range et.supertypes {
			if local, ok := s.(*entityType); ok && local.sa == l.sa {
				complete(local)
			}
		}
		et.closure()
		done[et] = true
	}

	for _, t := range l.sa.entities {
		et := t.(*entityType)
		complete(et)

		names := map[string]PropertyType{}
		for _, p := range et.allProperties {
			if old := names[p.Name()]; old != nil {
				return fmt.Errorf("entity type %q: property name %q used by %q and %q", et.name, p.Name(), old.Identifier(), p.Identifier())
			}
			names[p.Name()] = p
		}
	}
	return nil
}

func (l *loader) createRelationshipType(spec *RelationshipTypeSpecification) error {
	if err := checkName(spec.Name, ""); err != nil {
		return fmt.Errorf("relationship type: %w", err)
	}
	rt := &relationshipType{
		meshType: newMeshType(l.sa, spec.Name, &spec.TypeSpecification),
	}
	var err error
	rt.source, err = l.createRoleType(rt, true, &spec.Source)
	if err != nil {
		return fmt.Errorf("source of relationship type %q: %w", spec.Name, err)
	}
	rt.destination, err = l.createRoleType(rt, false, &spec.Destination)
	if err != nil {
		return fmt.Errorf("destination of relationship type %q: %w", spec.Name, err)
	}
	for _, t := range []MeshType{rt, rt.source, rt.destination} {
		if err := l.register(t); err != nil {
			return err
		}
	}
	l.sa.relationships = append(l.sa.relationships, rt)
	for _, r := range []*roleType{rt.source, rt.destination} {
		if r.entity != nil {
			l.roles[r.entity] = append(l.roles[r.entity], r)
		}
	}
	return nil
}

func (l *loader) createRoleType(rt *relationshipType, source bool, spec *RoleTypeSpecification) (*roleType, error) {
	suffix, name := DESTINATION_SUFFIX, "destination"
	if source {
		suffix, name = SOURCE_SUFFIX, "source"
	}
	r := &roleType{
		meshType: meshType{
			id:       NewIdentifier(l.sa.name, rt.name+suffix),
			name:     rt.name + suffix,
			userName: fmt.Sprintf("%s %s", rt.UserVisibleName(), name),
			sa:       l.sa,
		},
		relationship: rt,
		source:       source,
	}
	if spec.EntityType != "" {
		et, err := l.resolveEntityType(spec.EntityType)
		if err != nil {
			return nil, err
		}
		r.entity = et
	}

	m := primitives.NewMultiplicity(0, primitives.N)
	if spec.Multiplicity != "" {
		v, err := primitives.TheMultiplicityType.Parse(spec.Multiplicity)
		if err != nil {
			return nil, err
		}
		if err := primitives.TheMultiplicityType.Conforms(v); err != nil {
			return nil, err
		}
		m = v.(*primitives.MultiplicityValue)
	}
	r.multiplicity = m
	return r, nil
}

// resolveRoleType resolves a local name or the identifier of a
// role type of a dependency.
func (l *loader) resolveRoleType(name string) (RoleType, error) {
	id := Identifier(name)
	if id.IsSubjectArea() {
		id = l.sa.id.Child(name)
	}
	if id.SubjectArea() == l.sa.id {
		return cast[RoleType](l.sa.types[id], id)
	}
	if !slices.ContainsFunc(l.sa.dependencies, func(d SubjectArea) bool { return d.Identifier() == id.SubjectArea() }) {
		return nil, fmt.Errorf("role type %q: subject area %q is no declared dependency", name, id.SubjectArea())
	}
	return cast[RoleType](l.mb.types[id], id)
}

func (l *loader) resolveRefinements(spec *RelationshipTypeSpecification) error {
	rt := l.sa.types[l.sa.id.Child(spec.Name)].(*relationshipType)
	for _, r := range []struct {
		role *roleType
		spec *RoleTypeSpecification
	}{{rt.source, &spec.Source}, {rt.destination, &spec.Destination}} {
		for _, n := range r.spec.Refines {
			refined, err := l.resolveRoleType(n)
			if err != nil {
				return fmt.Errorf("refined role of %q: %w", r.role.id, err)
			}
			if err := checkRefinement(r.role, refined); err != nil {
				return err
			}
			r.role.refined = append(r.role.refined, refined)
		}
	}
	return nil
}

func checkRefinement(r RoleType, refined RoleType) error {
	if r == refined {
		return fmt.Errorf("role type %q cannot refine itself", r.Identifier())
	}
	if r.IsSource() != refined.IsSource() {
		return fmt.Errorf("role type %q cannot refine %q: different direction", r.Identifier(), refined.Identifier())
	}
	if refined.EntityType() != nil {
		if r.EntityType() == nil || !r.EntityType().IsSubtypeOfOrEquals(refined.EntityType()) {
			return fmt.Errorf("role type %q cannot refine %q: entity type is no subtype of %q", r.Identifier(), refined.Identifier(), refined.EntityType().Identifier())
		}
	}
	return nil
}
