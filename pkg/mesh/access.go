package mesh

import (
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// AccessManager decides about operations on MeshObjects.
// A failing check returns an error, which is reported
// as NotPermittedError.
type AccessManager interface {
	CheckPermittedGetProperty(obj MeshObject, pt modelbase.PropertyType) error
	CheckPermittedSetProperty(obj MeshObject, pt modelbase.PropertyType, v primitives.PropertyValue) error
	CheckPermittedBless(obj MeshObject, types ...modelbase.EntityType) error
	CheckPermittedUnbless(obj MeshObject, types ...modelbase.EntityType) error
	CheckPermittedDelete(obj MeshObject) error
	CheckPermittedRelate(obj MeshObject, neighbor MeshObject) error
	CheckPermittedBlessRelationship(obj MeshObject, neighbor MeshObject, thisEnds ...modelbase.RoleType) error
}

type readOnly struct{}

// ReadOnlyAccessManager permits reading, only.
var ReadOnlyAccessManager AccessManager = readOnly{}

func (readOnly) CheckPermittedGetProperty(obj MeshObject, pt modelbase.PropertyType) error {
	return nil
}

func (readOnly) CheckPermittedSetProperty(obj MeshObject, pt modelbase.PropertyType, v primitives.PropertyValue) error {
	return ErrReadOnlyAccess
}

func (readOnly) CheckPermittedBless(obj MeshObject, types ...modelbase.EntityType) error {
	return ErrReadOnlyAccess
}

func (readOnly) CheckPermittedUnbless(obj MeshObject, types ...modelbase.EntityType) error {
	return ErrReadOnlyAccess
}

func (readOnly) CheckPermittedDelete(obj MeshObject) error {
	return ErrReadOnlyAccess
}

func (readOnly) CheckPermittedRelate(obj MeshObject, neighbor MeshObject) error {
	return ErrReadOnlyAccess
}

func (readOnly) CheckPermittedBlessRelationship(obj MeshObject, neighbor MeshObject, thisEnds ...modelbase.RoleType) error {
	return ErrReadOnlyAccess
}
