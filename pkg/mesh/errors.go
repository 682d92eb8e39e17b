package mesh

import (
	"errors"
	"fmt"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

var (
	ErrNotPermitted         = errors.New("not permitted")
	ErrTransaction          = errors.New("transaction violation")
	ErrIllegalPropertyValue = errors.New("illegal property value")
	ErrIllegalPropertyType  = errors.New("illegal property type")
	ErrPropertyReadOnly     = errors.New("property is read-only")
	ErrIsAbstract           = errors.New("entity type is abstract")
	ErrBlessedAlready       = errors.New("blessed already")
	ErrNotBlessed           = errors.New("not blessed")
	ErrObjectDead           = errors.New("mesh object is dead")
	ErrObjectNotFound       = errors.New("mesh object not found")

	ErrRelatedAlready     = errors.New("related already")
	ErrNotRelated         = errors.New("not related")
	ErrRoleBlessedAlready = errors.New("role type blessed already")
	ErrRoleNotBlessed     = errors.New("role type not blessed")
	ErrRoleRequiresEntity = errors.New("role type requires entity type")
	ErrMultiplicity       = errors.New("multiplicity violation")

	ErrReadOnlyAccess     = errors.New("read-only access")
	ErrNoTransaction      = errors.New("no active transaction")
	ErrTransactionDone    = errors.New("transaction already finished")
	ErrForeignTransaction = errors.New("transaction is not the active one")
	ErrRelateToSelf       = errors.New("cannot relate mesh object to itself")
)

func objectName(obj MeshObject) string {
	if obj == nil {
		return "<none>"
	}
	return obj.Identifier().String()
}

////////////////////////////////////////////////////////////////////////////////

// NotPermittedError is reported if the access manager rejects
// an operation.
type NotPermittedError struct {
	Object    MeshObject
	Operation string
	Type      modelbase.MeshType
	Reason    error
}

func (e *NotPermittedError) Error() string {
	s := fmt.Sprintf("%s on %s", e.Operation, objectName(e.Object))
	if e.Type != nil {
		s = fmt.Sprintf("%s for %s", s, e.Type.Identifier())
	}
	return fmt.Sprintf("%s %s: %s", s, ErrNotPermitted, e.Reason)
}

func (e *NotPermittedError) Is(err error) bool {
	return err == ErrNotPermitted
}

func (e *NotPermittedError) Unwrap() error {
	return e.Reason
}

////////////////////////////////////////////////////////////////////////////////

// TransactionError is reported for modifications outside of
// a transaction or for failing commits.
type TransactionError struct {
	Object MeshObject
	Reason error
}

func (e *TransactionError) Error() string {
	if e.Object == nil {
		return fmt.Sprintf("%s: %s", ErrTransaction, e.Reason)
	}
	return fmt.Sprintf("%s for %s: %s", ErrTransaction, objectName(e.Object), e.Reason)
}

func (e *TransactionError) Is(err error) bool {
	return err == ErrTransaction
}

func (e *TransactionError) Unwrap() error {
	return e.Reason
}

////////////////////////////////////////////////////////////////////////////////

// IllegalPropertyValueError is reported for null values of mandatory
// properties and for values not conforming to the data type.
type IllegalPropertyValueError struct {
	Object       MeshObject
	PropertyType modelbase.PropertyType
	Value        primitives.PropertyValue
	Reason       error
}

func (e *IllegalPropertyValueError) Error() string {
	v := "null"
	if !primitives.IsNull(e.Value) {
		v = fmt.Sprintf("%q", e.Value.String())
	}
	return fmt.Sprintf("%s %s for %s of %s: %s", ErrIllegalPropertyValue, v, e.PropertyType.Identifier(), objectName(e.Object), e.Reason)
}

func (e *IllegalPropertyValueError) Is(err error) bool {
	return err == ErrIllegalPropertyValue
}

func (e *IllegalPropertyValueError) Unwrap() error {
	return e.Reason
}

////////////////////////////////////////////////////////////////////////////////

// IllegalPropertyTypeError is reported if an object is not blessed
// with the entity type declaring a property type.
type IllegalPropertyTypeError struct {
	Object       MeshObject
	PropertyType modelbase.PropertyType
}

func (e *IllegalPropertyTypeError) Error() string {
	return fmt.Sprintf("%s %s for %s", ErrIllegalPropertyType, e.PropertyType.Identifier(), objectName(e.Object))
}

func (e *IllegalPropertyTypeError) Is(err error) bool {
	return err == ErrIllegalPropertyType
}

////////////////////////////////////////////////////////////////////////////////

type PropertyReadOnlyError struct {
	Object       MeshObject
	PropertyType modelbase.PropertyType
}

func (e *PropertyReadOnlyError) Error() string {
	return fmt.Sprintf("%s %s of %s", e.PropertyType.Identifier(), ErrPropertyReadOnly, objectName(e.Object))
}

func (e *PropertyReadOnlyError) Is(err error) bool {
	return err == ErrPropertyReadOnly
}

////////////////////////////////////////////////////////////////////////////////

type IsAbstractError struct {
	EntityType modelbase.EntityType
}

func (e *IsAbstractError) Error() string {
	return fmt.Sprintf("%s %s", ErrIsAbstract, e.EntityType.Identifier())
}

func (e *IsAbstractError) Is(err error) bool {
	return err == ErrIsAbstract
}

////////////////////////////////////////////////////////////////////////////////

type EntityBlessedAlreadyError struct {
	Object     MeshObject
	EntityType modelbase.EntityType
}

func (e *EntityBlessedAlreadyError) Error() string {
	return fmt.Sprintf("%s %s with %s", objectName(e.Object), ErrBlessedAlready, e.EntityType.Identifier())
}

func (e *EntityBlessedAlreadyError) Is(err error) bool {
	return err == ErrBlessedAlready
}

////////////////////////////////////////////////////////////////////////////////

type EntityNotBlessedError struct {
	Object     MeshObject
	EntityType modelbase.EntityType
}

func (e *EntityNotBlessedError) Error() string {
	return fmt.Sprintf("%s %s with %s", objectName(e.Object), ErrNotBlessed, e.EntityType.Identifier())
}

func (e *EntityNotBlessedError) Is(err error) bool {
	return err == ErrNotBlessed
}

////////////////////////////////////////////////////////////////////////////////

type ObjectDeadError struct {
	Object MeshObject
}

func (e *ObjectDeadError) Error() string {
	return fmt.Sprintf("%s: %s", ErrObjectDead, objectName(e.Object))
}

func (e *ObjectDeadError) Is(err error) bool {
	return err == ErrObjectDead
}

////////////////////////////////////////////////////////////////////////////////

type ObjectNotFoundError struct {
	Identifier MeshObjectIdentifier
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.Identifier)
}

func (e *ObjectNotFoundError) Is(err error) bool {
	return err == ErrObjectNotFound
}

////////////////////////////////////////////////////////////////////////////////

type RelatedAlreadyError struct {
	Object   MeshObject
	Neighbor MeshObject
}

func (e *RelatedAlreadyError) Error() string {
	return fmt.Sprintf("%s %s to %s", objectName(e.Object), ErrRelatedAlready, objectName(e.Neighbor))
}

func (e *RelatedAlreadyError) Is(err error) bool {
	return err == ErrRelatedAlready
}

////////////////////////////////////////////////////////////////////////////////

type NotRelatedError struct {
	Object   MeshObject
	Neighbor MeshObject
}

func (e *NotRelatedError) Error() string {
	return fmt.Sprintf("%s %s to %s", objectName(e.Object), ErrNotRelated, objectName(e.Neighbor))
}

func (e *NotRelatedError) Is(err error) bool {
	return err == ErrNotRelated
}

////////////////////////////////////////////////////////////////////////////////

type RoleTypeBlessedAlreadyError struct {
	Object   MeshObject
	RoleType modelbase.RoleType
	Neighbor MeshObject
}

func (e *RoleTypeBlessedAlreadyError) Error() string {
	return fmt.Sprintf("relationship of %s to %s: %s %s", objectName(e.Object), objectName(e.Neighbor), ErrRoleBlessedAlready, e.RoleType.Identifier())
}

func (e *RoleTypeBlessedAlreadyError) Is(err error) bool {
	return err == ErrRoleBlessedAlready
}

////////////////////////////////////////////////////////////////////////////////

type RoleTypeNotBlessedError struct {
	Object   MeshObject
	RoleType modelbase.RoleType
	Neighbor MeshObject
}

func (e *RoleTypeNotBlessedError) Error() string {
	return fmt.Sprintf("relationship of %s to %s: %s %s", objectName(e.Object), objectName(e.Neighbor), ErrRoleNotBlessed, e.RoleType.Identifier())
}

func (e *RoleTypeNotBlessedError) Is(err error) bool {
	return err == ErrRoleNotBlessed
}

////////////////////////////////////////////////////////////////////////////////

// RoleTypeRequiresEntityTypeError is reported if an entity type
// cannot be unblessed, because the object still plays a role
// requiring it.
type RoleTypeRequiresEntityTypeError struct {
	Object     MeshObject
	RoleType   modelbase.RoleType
	EntityType modelbase.EntityType
}

func (e *RoleTypeRequiresEntityTypeError) Error() string {
	return fmt.Sprintf("%s of %s: %s %s", e.RoleType.Identifier(), objectName(e.Object), ErrRoleRequiresEntity, e.EntityType.Identifier())
}

func (e *RoleTypeRequiresEntityTypeError) Is(err error) bool {
	return err == ErrRoleRequiresEntity
}

////////////////////////////////////////////////////////////////////////////////

// MultiplicityError is reported if blessing a relationship exceeds
// the maximum multiplicity of a role type.
type MultiplicityError struct {
	Object   MeshObject
	RoleType modelbase.RoleType
	Count    int
}

func (e *MultiplicityError) Error() string {
	return fmt.Sprintf("%s: %s of %s would have %d neighbors, but allows %s", ErrMultiplicity, e.RoleType.Identifier(), objectName(e.Object), e.Count, e.RoleType.Multiplicity())
}

func (e *MultiplicityError) Is(err error) bool {
	return err == ErrMultiplicity
}
