package modelbase

import (
	"errors"
	"fmt"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
)

// Validate checks the consistency of all loaded meta types.
// All findings are reported.
func Validate(mb ModelBase) error {
	var errs []error

	for _, sa := range mb.SubjectAreas() {
		for _, d := range sa.Dependencies() {
			if _, err := mb.FindSubjectArea(d.Identifier()); err != nil {
				errs = append(errs, fmt.Errorf("subject area %q: dependency: %w", sa.Identifier(), err))
			}
		}
		for _, et := range sa.EntityTypes() {
			if err := validateEntityType(mb, et); err != nil {
				errs = append(errs, fmt.Errorf("subject area %q: %w", sa.Identifier(), err))
			}
		}
		for _, rt := range sa.RelationshipTypes() {
			if err := validateRelationshipType(mb, rt); err != nil {
				errs = append(errs, fmt.Errorf("subject area %q: %w", sa.Identifier(), err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateEntityType(mb ModelBase, et EntityType) error {
	var errs []error

	for _, s := range et.AllSupertypes() {
		if s == et {
			errs = append(errs, fmt.Errorf("inheritance cycle"))
		}
		if _, err := mb.FindEntityType(s.Identifier()); err != nil {
			errs = append(errs, fmt.Errorf("supertype: %w", err))
		}
	}

	names := map[string]PropertyType{}
	for _, p := range et.AllPropertyTypes() {
		if old := names[p.Name()]; old != nil {
			errs = append(errs, fmt.Errorf("property name %q used by %q and %q", p.Name(), old.Identifier(), p.Identifier()))
		}
		names[p.Name()] = p

		if p.EntityType() == et {
			if err := validatePropertyType(p); err != nil {
				errs = append(errs, fmt.Errorf("property %q: %w", p.Name(), err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("entity type %q: %w", et.Name(), err)
	}
	return nil
}

func validatePropertyType(p PropertyType) error {
	def := p.DefaultValue()
	if primitives.IsNull(def) {
		if !p.IsOptional() {
			return fmt.Errorf("mandatory property requires a default value")
		}
		return nil
	}
	return p.DataType().Conforms(def)
}

func validateRelationshipType(mb ModelBase, rt RelationshipType) error {
	var errs []error
	for _, r := range []RoleType{rt.Source(), rt.Destination()} {
		if r.Inverse().Inverse() != r {
			errs = append(errs, fmt.Errorf("role %q: inconsistent inverse", r.Name()))
		}
		if et := r.EntityType(); et != nil {
			if _, err := mb.FindEntityType(et.Identifier()); err != nil {
				errs = append(errs, fmt.Errorf("role %q: %w", r.Name(), err))
			}
		}
		if err := primitives.TheMultiplicityType.Conforms(r.Multiplicity()); err != nil {
			errs = append(errs, fmt.Errorf("role %q: %w", r.Name(), err))
		}
		for _, rr := range r.RefinedRoleTypes() {
			if err := checkRefinement(r, rr); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("relationship type %q: %w", rt.Name(), err)
	}
	return nil
}
