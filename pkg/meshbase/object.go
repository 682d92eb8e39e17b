package meshbase

import (
	"fmt"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// meshObject is the shared state of a MeshObject. Its state is guarded
// by the lock of its MeshBase and loaded on demand.
// Used directly, it is a read-only handle. Modifications are done
// through a boundObject provided by a Transaction.
type meshObject struct {
	mb *MeshBase
	id mesh.MeshObjectIdentifier

	loaded     bool
	dead       bool
	generation int64
	types      []modelbase.EntityType
	properties map[modelbase.PropertyType]primitives.PropertyValue
	// neighbors maps related objects to the roles this object
	// plays in the relationship.
	neighbors map[mesh.MeshObjectIdentifier][]modelbase.RoleType

	created utils.Timestamp
	updated utils.Timestamp
	read    utils.Timestamp
}

var _ mesh.MeshObject = (*meshObject)(nil)

// boundObject is a handle bound to the transaction providing it.
type boundObject struct {
	*meshObject
	tx *Transaction
}

var _ mesh.MeshObject = (*boundObject)(nil)

func (o *meshObject) Identifier() mesh.MeshObjectIdentifier {
	return o.id
}

func (o *meshObject) MeshBaseName() string {
	return o.mb.name
}

func (o *meshObject) String() string {
	return fmt.Sprintf("%s/%s", o.mb.name, o.id)
}

func (o *meshObject) IsDead() bool {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if err := o.mb.load(o); err != nil {
		log.LogError(err, "cannot load {{id}}", "id", o.id)
	}
	return o.dead
}

// alive loads the object and checks that it is not dead.
// It must be called under lock.
func (o *meshObject) alive() error {
	if err := o.mb.load(o); err != nil {
		return err
	}
	if o.dead {
		return &mesh.ObjectDeadError{Object: o}
	}
	return nil
}

func (o *meshObject) checkAlive() error {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	return o.alive()
}

// prepare checks the preconditions of a modification before the
// access manager is asked.
func (o *meshObject) prepare(tx *Transaction) error {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if err := o.alive(); err != nil {
		return err
	}
	return o.mb.transaction(tx, o)
}

// modify acquires the lock for a modification and rechecks the
// preconditions. The lock is only kept if there is no error.
func (o *meshObject) modify(tx *Transaction) error {
	o.mb.lock.Lock()
	err := o.mb.transaction(tx, o)
	if err == nil {
		err = o.alive()
	}
	if err != nil {
		o.mb.lock.Unlock()
	}
	return err
}

// blessedBy must be called under lock.
func (o *meshObject) blessedBy(et modelbase.EntityType, subtypesOk bool) bool {
	for _, t := range o.types {
		if t == et || (subtypesOk && t.IsSubtypeOfOrEquals(et)) {
			return true
		}
	}
	return false
}

func (o *meshObject) Types() []modelbase.EntityType {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if o.alive() != nil {
		return nil
	}
	return slices.Clone(o.types)
}

func (o *meshObject) IsBlessedBy(et modelbase.EntityType, subtypesOk bool) bool {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if o.alive() != nil {
		return false
	}
	return o.blessedBy(et, subtypesOk)
}

func (o *meshObject) Bless(types ...modelbase.EntityType) error {
	return o.bless(nil, types)
}

func (o *meshObject) Unbless(types ...modelbase.EntityType) error {
	return o.unbless(nil, types)
}

func (o *meshObject) bless(tx *Transaction, types []modelbase.EntityType) error {
	if len(types) == 0 {
		return nil
	}
	for _, et := range types {
		if et.IsAbstract() {
			return &mesh.IsAbstractError{EntityType: et}
		}
	}
	if err := o.prepare(tx); err != nil {
		return err
	}
	if am := o.mb.access; am != nil {
		if err := am.CheckPermittedBless(o, types...); err != nil {
			return &mesh.NotPermittedError{Object: o, Operation: "bless", Type: types[0], Reason: err}
		}
	}

	if err := o.modify(tx); err != nil {
		return err
	}
	defer o.mb.lock.Unlock()
	for i, et := range types {
		if o.blessedBy(et, true) || slices.ContainsFunc(types[:i], func(t modelbase.EntityType) bool { return t.IsSubtypeOfOrEquals(et) }) {
			return &mesh.EntityBlessedAlreadyError{Object: o, EntityType: et}
		}
	}

	for _, et := range types {
		o.types = utils.FilterSlice(o.types, func(t modelbase.EntityType) bool {
			return !et.IsSubtypeOfOrEquals(t)
		})
		o.types = append(o.types, et)
		for _, pt := range et.AllPropertyTypes() {
			if _, ok := o.properties[pt]; !ok {
				o.properties[pt] = pt.DefaultValue()
			}
		}
	}
	o.updated = utils.NewTimestamp()
	tx.touch(o, stateModified)
	tx.queue(mesh.NewTypesAddedEvent(o, types...))
	return nil
}

func (o *meshObject) unbless(tx *Transaction, types []modelbase.EntityType) error {
	if len(types) == 0 {
		return nil
	}
	if err := o.prepare(tx); err != nil {
		return err
	}
	if am := o.mb.access; am != nil {
		if err := am.CheckPermittedUnbless(o, types...); err != nil {
			return &mesh.NotPermittedError{Object: o, Operation: "unbless", Type: types[0], Reason: err}
		}
	}

	if err := o.modify(tx); err != nil {
		return err
	}
	defer o.mb.lock.Unlock()
	for _, et := range types {
		if !o.blessedBy(et, false) {
			return &mesh.EntityNotBlessedError{Object: o, EntityType: et}
		}
	}

	remaining := utils.FilterSlice(o.types, func(t modelbase.EntityType) bool {
		return !slices.Contains(types, t)
	})
	if err := o.checkRoles(remaining); err != nil {
		return err
	}
	o.types = remaining
	covered := sets.New(propertyTypes(o.types)...)
	for pt := range o.properties {
		if !covered.Has(pt) {
			delete(o.properties, pt)
		}
	}
	o.updated = utils.NewTimestamp()
	tx.touch(o, stateModified)
	tx.queue(mesh.NewTypesRemovedEvent(o, types...))
	return nil
}

func (o *meshObject) PropertyTypes() []modelbase.PropertyType {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if o.alive() != nil {
		return nil
	}
	return propertyTypes(o.types)
}

func (o *meshObject) GetPropertyValue(pt modelbase.PropertyType) (primitives.PropertyValue, error) {
	o.mb.lock.Lock()
	err := o.alive()
	if err == nil && !o.blessedBy(pt.EntityType(), true) {
		err = &mesh.IllegalPropertyTypeError{Object: o, PropertyType: pt}
	}
	o.mb.lock.Unlock()
	if err != nil {
		return nil, err
	}

	if am := o.mb.access; am != nil {
		if err := am.CheckPermittedGetProperty(o, pt); err != nil {
			return nil, &mesh.NotPermittedError{Object: o, Operation: "get", Type: pt, Reason: err}
		}
	}

	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if err := o.alive(); err != nil {
		return nil, err
	}
	o.read = utils.NewTimestamp()
	return o.properties[pt], nil
}

type setting struct {
	pt modelbase.PropertyType
	v  primitives.PropertyValue
}

func (o *meshObject) SetPropertyValue(pt modelbase.PropertyType, v primitives.PropertyValue) (primitives.PropertyValue, error) {
	return o.setPropertyValue(nil, pt, v)
}

func (o *meshObject) SetPropertyValues(values map[modelbase.PropertyType]primitives.PropertyValue) error {
	return o.setPropertyValues(nil, values)
}

func (o *meshObject) setPropertyValue(tx *Transaction, pt modelbase.PropertyType, v primitives.PropertyValue) (primitives.PropertyValue, error) {
	old, err := o.setProperties(tx, []setting{{pt, v}})
	if err != nil {
		return nil, err
	}
	return old[0], nil
}

func (o *meshObject) setPropertyValues(tx *Transaction, values map[modelbase.PropertyType]primitives.PropertyValue) error {
	var settings []setting
	for pt, v := range values {
		settings = append(settings, setting{pt, v})
	}
	slices.SortFunc(settings, func(a, b setting) int {
		return modelbase.CompareIdentifier(a.pt.Identifier(), b.pt.Identifier())
	})
	_, err := o.setProperties(tx, settings)
	return err
}

func (o *meshObject) checkValue(pt modelbase.PropertyType, v primitives.PropertyValue) error {
	if pt.IsReadOnly() {
		return &mesh.PropertyReadOnlyError{Object: o, PropertyType: pt}
	}
	if primitives.IsNull(v) {
		if !pt.IsOptional() {
			return &mesh.IllegalPropertyValueError{Object: o, PropertyType: pt, Reason: fmt.Errorf("null value for mandatory property")}
		}
		return nil
	}
	if err := pt.DataType().Conforms(v); err != nil {
		return &mesh.IllegalPropertyValueError{Object: o, PropertyType: pt, Value: v, Reason: err}
	}
	return nil
}

func (o *meshObject) setProperties(tx *Transaction, settings []setting) ([]primitives.PropertyValue, error) {
	if err := o.checkAlive(); err != nil {
		return nil, err
	}
	for i, s := range settings {
		if primitives.IsNull(s.v) {
			settings[i].v = nil
		}
		if err := o.checkValue(s.pt, s.v); err != nil {
			return nil, err
		}
	}
	if err := o.prepare(tx); err != nil {
		return nil, err
	}
	if am := o.mb.access; am != nil {
		for _, s := range settings {
			if err := am.CheckPermittedSetProperty(o, s.pt, s.v); err != nil {
				return nil, &mesh.NotPermittedError{Object: o, Operation: "set", Type: s.pt, Reason: err}
			}
		}
	}

	if err := o.modify(tx); err != nil {
		return nil, err
	}
	defer o.mb.lock.Unlock()
	for _, s := range settings {
		if !o.blessedBy(s.pt.EntityType(), true) {
			return nil, &mesh.IllegalPropertyTypeError{Object: o, PropertyType: s.pt}
		}
	}

	var old []primitives.PropertyValue
	for _, s := range settings {
		prev := o.properties[s.pt]
		old = append(old, prev)
		o.properties[s.pt] = s.v
		if !primitives.EqualValues(prev, s.v) {
			tx.queue(mesh.NewPropertyChangedEvent(o, s.pt, prev, s.v))
		}
	}
	o.updated = utils.NewTimestamp()
	tx.touch(o, stateModified)
	return old, nil
}

func (o *meshObject) TimeCreated() utils.Timestamp {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	o.alive()
	return o.created
}

func (o *meshObject) TimeUpdated() utils.Timestamp {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	o.alive()
	return o.updated
}

func (o *meshObject) TimeRead() utils.Timestamp {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	o.alive()
	return o.read
}

////////////////////////////////////////////////////////////////////////////////
// bound handles

func (b *boundObject) Bless(types ...modelbase.EntityType) error {
	return b.bless(b.tx, types)
}

func (b *boundObject) Unbless(types ...modelbase.EntityType) error {
	return b.unbless(b.tx, types)
}

func (b *boundObject) SetPropertyValue(pt modelbase.PropertyType, v primitives.PropertyValue) (primitives.PropertyValue, error) {
	return b.setPropertyValue(b.tx, pt, v)
}

func (b *boundObject) SetPropertyValues(values map[modelbase.PropertyType]primitives.PropertyValue) error {
	return b.setPropertyValues(b.tx, values)
}

func (b *boundObject) NeighborMeshObjects() ([]mesh.MeshObject, error) {
	return b.neighborObjects(b.tx, nil)
}

func (b *boundObject) Traverse(thisEnd modelbase.RoleType) ([]mesh.MeshObject, error) {
	return b.neighborObjects(b.tx, thisEnd)
}

func (b *boundObject) Relate(neighbor mesh.MeshObject) error {
	return b.relate(b.tx, neighbor, nil)
}

func (b *boundObject) Unrelate(neighbor mesh.MeshObject) error {
	return b.unrelate(b.tx, neighbor)
}

func (b *boundObject) BlessRelationship(neighbor mesh.MeshObject, thisEnds ...modelbase.RoleType) error {
	return b.blessRelationship(b.tx, neighbor, thisEnds)
}

func (b *boundObject) UnblessRelationship(neighbor mesh.MeshObject, thisEnds ...modelbase.RoleType) error {
	return b.unblessRelationship(b.tx, neighbor, thisEnds)
}

func (b *boundObject) RelateAndBless(neighbor mesh.MeshObject, thisEnds ...modelbase.RoleType) error {
	return b.relate(b.tx, neighbor, thisEnds)
}
