package modelbase

import (
	"fmt"
	"io"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
)

func (m *modelBase) Dump(w io.Writer) {
	for _, sa := range m.SubjectAreas() {
		DumpSubjectArea(w, sa)
	}
}

// DumpSubjectArea prints a readable description of a subject area.
func DumpSubjectArea(w io.Writer, sa SubjectArea) {
	fmt.Fprintf(w, "Subject area: %s\n", sa.Identifier())
	if sa.UserVisibleName() != sa.Name() {
		fmt.Fprintf(w, "  name:        %s\n", sa.UserVisibleName())
	}
	fmt.Fprintf(w, "  fingerprint: %s\n", sa.Fingerprint())
	if deps := sa.Dependencies(); len(deps) > 0 {
		fmt.Fprintf(w, "  dependencies:\n")
		for _, d := range deps {
			fmt.Fprintf(w, "  - %s\n", d.Identifier())
		}
	}
	fmt.Fprintf(w, "  entity types:\n")
	for _, et := range sa.EntityTypes() {
		DumpEntityType(w, et, "  ")
	}
	fmt.Fprintf(w, "  relationship types:\n")
	for _, rt := range sa.RelationshipTypes() {
		fmt.Fprintf(w, "  - %s\n", rt.Name())
		dumpRole(w, "source", rt.Source())
		dumpRole(w, "destination", rt.Destination())
	}
}

// DumpEntityType prints the properties and roles of an entity type.
func DumpEntityType(w io.Writer, et EntityType, gap string) {
	abstract := ""
	if et.IsAbstract() {
		abstract = " (abstract)"
	}
	fmt.Fprintf(w, "%s- %s%s\n", gap, et.Name(), abstract)
	if sup := et.DirectSupertypes(); len(sup) > 0 {
		fmt.Fprintf(w, "%s  supertypes:\n", gap)
		for _, s := range sup {
			fmt.Fprintf(w, "%s  - %s\n", gap, s.Identifier())
		}
	}
	if props := et.AllPropertyTypes(); len(props) > 0 {
		fmt.Fprintf(w, "%s  properties:\n", gap)
		for _, p := range props {
			fmt.Fprintf(w, "%s  - %s: %s%s\n", gap, p.Name(), p.DataType(), propertyFlags(p))
		}
	}
	if roles := et.AllRoleTypes(); len(roles) > 0 {
		fmt.Fprintf(w, "%s  roles:\n", gap)
		for _, r := range roles {
			fmt.Fprintf(w, "%s  - %s (%s)\n", gap, r.Identifier(), r.Multiplicity())
		}
	}
}

func propertyFlags(p PropertyType) string {
	s := ""
	if p.IsOptional() {
		s += " optional"
	}
	if p.IsReadOnly() {
		s += " readonly"
	}
	if d := p.DefaultValue(); !primitives.IsNull(d) {
		s += fmt.Sprintf(" default %q", d.String())
	}
	if s != "" {
		s = " [" + s[1:] + "]"
	}
	return s
}

func dumpRole(w io.Writer, kind string, r RoleType) {
	et := "any"
	if r.EntityType() != nil {
		et = r.EntityType().Identifier().String()
	}
	fmt.Fprintf(w, "    %-12s %s %s\n", kind+":", et, r.Multiplicity())
	for _, rr := range r.RefinedRoleTypes() {
		fmt.Fprintf(w, "      refines %s\n", rr.Identifier())
	}
}
