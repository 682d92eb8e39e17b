package meshbase

import (
	"fmt"
	"slices"

	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// refinedClosure provides the given role types together with all
// role types refined by them.
func refinedClosure(roles []modelbase.RoleType) []modelbase.RoleType {
	var result []modelbase.RoleType
	for _, r := range roles {
		if !slices.Contains(result, r) {
			result = append(result, r)
			result = utils.AppendUnique(result, refinedClosure(r.RefinedRoleTypes())...)
		}
	}
	return result
}

// covers checks whether one of the roles is the given one
// or refines it.
func covers(roles []modelbase.RoleType, r modelbase.RoleType) bool {
	for _, c := range roles {
		if slices.Contains(refinedClosure([]modelbase.RoleType{c}), r) {
			return true
		}
	}
	return false
}

func inverses(roles []modelbase.RoleType) []modelbase.RoleType {
	return utils.TransformSlice(roles, modelbase.RoleType.Inverse)
}

// accepts checks whether the object may play a role.
// It must be called under lock.
func (o *meshObject) accepts(r modelbase.RoleType) error {
	if et := r.EntityType(); et != nil && !o.blessedBy(et, true) {
		return &mesh.EntityNotBlessedError{Object: o, EntityType: et}
	}
	return nil
}

// checkRoles checks whether the played roles are still possible
// with a set of entity types. It must be called under lock.
func (o *meshObject) checkRoles(types []modelbase.EntityType) error {
	for _, id := range utils.OrderedMapKeys(o.neighbors) {
		for _, r := range o.neighbors[id] {
			et := r.EntityType()
			if et == nil {
				continue
			}
			if !slices.ContainsFunc(types, func(t modelbase.EntityType) bool { return t.IsSubtypeOfOrEquals(et) }) {
				return &mesh.RoleTypeRequiresEntityTypeError{Object: o, RoleType: r, EntityType: et}
			}
		}
	}
	return nil
}

// checkMultiplicity checks the maximum multiplicity of the added
// roles, if the roles played towards the neighbor are replaced.
// It must be called under lock.
func (o *meshObject) checkMultiplicity(neighbor mesh.MeshObjectIdentifier, roles, added []modelbase.RoleType) error {
	for _, r := range refinedClosure(added) {
		m := r.Multiplicity()
		if m == nil || m.IsUnbounded() {
			continue
		}
		n := 0
		if covers(roles, r) {
			n++
		}
		for id, rs := range o.neighbors {
			if id != neighbor && covers(rs, r) {
				n++
			}
		}
		if n > m.Max() {
			return &mesh.MultiplicityError{Object: o, RoleType: r, Count: n}
		}
	}
	return nil
}

// checkBless checks whether the relationship to a neighbor can
// additionally be blessed with roles. It must be called under lock.
func (o *meshObject) checkBless(n *meshObject, thisEnds []modelbase.RoleType) error {
	current := o.neighbors[n.id]
	for i, r := range thisEnds {
		if slices.Contains(current, r) || slices.Contains(thisEnds[:i], r) {
			return &mesh.RoleTypeBlessedAlreadyError{Object: o, RoleType: r, Neighbor: n}
		}
		if err := o.accepts(r); err != nil {
			return err
		}
		if err := n.accepts(r.Inverse()); err != nil {
			return err
		}
	}
	if err := o.checkMultiplicity(n.id, append(slices.Clone(current), thisEnds...), thisEnds); err != nil {
		return err
	}
	others := inverses(thisEnds)
	return n.checkMultiplicity(o.id, append(slices.Clone(n.neighbors[o.id]), others...), others)
}

// relateTo must be called under lock.
func (o *meshObject) relateTo(tx *Transaction, n *meshObject) {
	now := utils.NewTimestamp()
	for _, e := range []struct{ this, other *meshObject }{{o, n}, {n, o}} {
		e.this.neighbors[e.other.id] = []modelbase.RoleType{}
		e.this.updated = now
		tx.touch(e.this, stateModified)
		tx.queue(mesh.NewNeighborAddedEvent(e.this, e.other.id))
	}
}

// unrelateFrom must be called under lock.
func (o *meshObject) unrelateFrom(tx *Transaction, n *meshObject) {
	now := utils.NewTimestamp()
	for _, e := range []struct{ this, other *meshObject }{{o, n}, {n, o}} {
		delete(e.this.neighbors, e.other.id)
		e.this.updated = now
		tx.touch(e.this, stateModified)
		tx.queue(mesh.NewNeighborRemovedEvent(e.this, e.other.id))
	}
}

// addRoles must be called under lock.
func (o *meshObject) addRoles(tx *Transaction, n *meshObject, thisEnds []modelbase.RoleType) {
	now := utils.NewTimestamp()
	others := inverses(thisEnds)
	o.neighbors[n.id] = append(o.neighbors[n.id], thisEnds...)
	n.neighbors[o.id] = append(n.neighbors[o.id], others...)
	for _, e := range []*meshObject{o, n} {
		e.updated = now
		tx.touch(e, stateModified)
	}
	tx.queue(mesh.NewRoleTypesAddedEvent(o, n.id, thisEnds...))
	tx.queue(mesh.NewRoleTypesAddedEvent(n, o.id, others...))
}

// removeRoles must be called under lock.
func (o *meshObject) removeRoles(tx *Transaction, n *meshObject, thisEnds []modelbase.RoleType) {
	now := utils.NewTimestamp()
	others := inverses(thisEnds)
	o.neighbors[n.id] = utils.FilterSlice(o.neighbors[n.id], func(r modelbase.RoleType) bool { return !slices.Contains(thisEnds, r) })
	n.neighbors[o.id] = utils.FilterSlice(n.neighbors[o.id], func(r modelbase.RoleType) bool { return !slices.Contains(others, r) })
	for _, e := range []*meshObject{o, n} {
		e.updated = now
		tx.touch(e, stateModified)
	}
	tx.queue(mesh.NewRoleTypesRemovedEvent(o, n.id, thisEnds...))
	tx.queue(mesh.NewRoleTypesRemovedEvent(n, o.id, others...))
}

// neighbor resolves the neighbor of a relationship operation.
func (o *meshObject) neighbor(obj mesh.MeshObject) (*meshObject, error) {
	n, err := o.mb.own(obj)
	if err != nil {
		return nil, err
	}
	if n == o {
		return nil, fmt.Errorf("%s: %w", o.id, mesh.ErrRelateToSelf)
	}
	return n, n.checkAlive()
}

func (o *meshObject) Relate(neighbor mesh.MeshObject) error {
	return o.relate(nil, neighbor, nil)
}

func (o *meshObject) RelateAndBless(neighbor mesh.MeshObject, thisEnds ...modelbase.RoleType) error {
	return o.relate(nil, neighbor, thisEnds)
}

func (o *meshObject) relate(tx *Transaction, neighbor mesh.MeshObject, thisEnds []modelbase.RoleType) error {
	n, err := o.neighbor(neighbor)
	if err != nil {
		return err
	}
	if err := o.prepare(tx); err != nil {
		return err
	}
	if am := o.mb.access; am != nil {
		if err := am.CheckPermittedRelate(o, n); err != nil {
			return &mesh.NotPermittedError{Object: o, Operation: "relate", Reason: err}
		}
		if len(thisEnds) > 0 {
			if err := am.CheckPermittedBlessRelationship(o, n, thisEnds...); err != nil {
				return &mesh.NotPermittedError{Object: o, Operation: "bless relationship", Type: thisEnds[0], Reason: err}
			}
		}
	}

	if err := o.modify(tx); err != nil {
		return err
	}
	defer o.mb.lock.Unlock()
	if err := n.alive(); err != nil {
		return err
	}
	if _, ok := o.neighbors[n.id]; ok {
		return &mesh.RelatedAlreadyError{Object: o, Neighbor: n}
	}
	if err := o.checkBless(n, thisEnds); err != nil {
		return err
	}
	o.relateTo(tx, n)
	if len(thisEnds) > 0 {
		o.addRoles(tx, n, thisEnds)
	}
	return nil
}

func (o *meshObject) Unrelate(neighbor mesh.MeshObject) error {
	return o.unrelate(nil, neighbor)
}

func (o *meshObject) unrelate(tx *Transaction, neighbor mesh.MeshObject) error {
	n, err := o.neighbor(neighbor)
	if err != nil {
		return err
	}
	if err := o.prepare(tx); err != nil {
		return err
	}
	if am := o.mb.access; am != nil {
		if err := am.CheckPermittedRelate(o, n); err != nil {
			return &mesh.NotPermittedError{Object: o, Operation: "unrelate", Reason: err}
		}
	}

	if err := o.modify(tx); err != nil {
		return err
	}
	defer o.mb.lock.Unlock()
	if err := n.alive(); err != nil {
		return err
	}
	if _, ok := o.neighbors[n.id]; !ok {
		return &mesh.NotRelatedError{Object: o, Neighbor: n}
	}
	o.unrelateFrom(tx, n)
	return nil
}

func (o *meshObject) BlessRelationship(neighbor mesh.MeshObject, thisEnds ...modelbase.RoleType) error {
	return o.blessRelationship(nil, neighbor, thisEnds)
}

func (o *meshObject) blessRelationship(tx *Transaction, neighbor mesh.MeshObject, thisEnds []modelbase.RoleType) error {
	if len(thisEnds) == 0 {
		return nil
	}
	n, err := o.neighbor(neighbor)
	if err != nil {
		return err
	}
	if err := o.prepare(tx); err != nil {
		return err
	}
	if am := o.mb.access; am != nil {
		if err := am.CheckPermittedBlessRelationship(o, n, thisEnds...); err != nil {
			return &mesh.NotPermittedError{Object: o, Operation: "bless relationship", Type: thisEnds[0], Reason: err}
		}
	}

	if err := o.modify(tx); err != nil {
		return err
	}
	defer o.mb.lock.Unlock()
	if err := n.alive(); err != nil {
		return err
	}
	if _, ok := o.neighbors[n.id]; !ok {
		return &mesh.NotRelatedError{Object: o, Neighbor: n}
	}
	if err := o.checkBless(n, thisEnds); err != nil {
		return err
	}
	o.addRoles(tx, n, thisEnds)
	return nil
}

func (o *meshObject) UnblessRelationship(neighbor mesh.MeshObject, thisEnds ...modelbase.RoleType) error {
	return o.unblessRelationship(nil, neighbor, thisEnds)
}

func (o *meshObject) unblessRelationship(tx *Transaction, neighbor mesh.MeshObject, thisEnds []modelbase.RoleType) error {
	if len(thisEnds) == 0 {
		return nil
	}
	n, err := o.neighbor(neighbor)
	if err != nil {
		return err
	}
	if err := o.prepare(tx); err != nil {
		return err
	}
	if am := o.mb.access; am != nil {
		if err := am.CheckPermittedBlessRelationship(o, n, thisEnds...); err != nil {
			return &mesh.NotPermittedError{Object: o, Operation: "unbless relationship", Type: thisEnds[0], Reason: err}
		}
	}

	if err := o.modify(tx); err != nil {
		return err
	}
	defer o.mb.lock.Unlock()
	if err := n.alive(); err != nil {
		return err
	}
	current, ok := o.neighbors[n.id]
	if !ok {
		return &mesh.NotRelatedError{Object: o, Neighbor: n}
	}
	for _, r := range thisEnds {
		if !slices.Contains(current, r) {
			return &mesh.RoleTypeNotBlessedError{Object: o, RoleType: r, Neighbor: n}
		}
	}
	o.removeRoles(tx, n, thisEnds)
	return nil
}

func (o *meshObject) IsRelated(neighbor mesh.MeshObject) bool {
	n, err := o.mb.own(neighbor)
	if err != nil {
		return false
	}
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if o.alive() != nil {
		return false
	}
	_, ok := o.neighbors[n.id]
	return ok
}

func (o *meshObject) RoleTypes(neighbor mesh.MeshObject) ([]modelbase.RoleType, error) {
	n, err := o.mb.own(neighbor)
	if err != nil {
		return nil, err
	}
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if err := o.alive(); err != nil {
		return nil, err
	}
	roles, ok := o.neighbors[n.id]
	if !ok {
		return nil, &mesh.NotRelatedError{Object: o, Neighbor: n}
	}
	return slices.Clone(roles), nil
}

func (o *meshObject) NeighborMeshObjects() ([]mesh.MeshObject, error) {
	return o.neighborObjects(nil, nil)
}

func (o *meshObject) Traverse(thisEnd modelbase.RoleType) ([]mesh.MeshObject, error) {
	return o.neighborObjects(nil, thisEnd)
}

// neighborObjects provides the neighbors playing the inverse of a
// role. A nil role selects all neighbors. With a transaction the
// handles are bound to it.
func (o *meshObject) neighborObjects(tx *Transaction, thisEnd modelbase.RoleType) ([]mesh.MeshObject, error) {
	o.mb.lock.Lock()
	defer o.mb.lock.Unlock()
	if err := o.alive(); err != nil {
		return nil, err
	}

	var ids []mesh.MeshObjectIdentifier
	for id, roles := range o.neighbors {
		if thisEnd == nil || covers(roles, thisEnd) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	result := []mesh.MeshObject{}
	for _, id := range ids {
		n := o.mb.object(id)
		if err := o.mb.load(n); err != nil {
			return nil, err
		}
		if n.dead {
			continue
		}
		result = append(result, o.mb.handle(tx, n))
	}
	return result, nil
}
