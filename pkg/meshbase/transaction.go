package meshbase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mandelsoft/meshmodel/pkg/database"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

type txstate int

const (
	stateModified txstate = 1 << iota
	stateCreated
	stateDeleted
)

// Transaction collects the modifications of MeshObjects. They are
// persisted on Commit and the queued change events are dispatched.
// Objects can only be modified by the handles provided by the
// transaction while it is active.
type Transaction struct {
	mb     *MeshBase
	done   bool
	states map[*meshObject]txstate
	order  []*meshObject
	events []*mesh.ChangeEvent
	bound  map[*meshObject]*boundObject
}

var _ mesh.Transaction = (*Transaction)(nil)

// Begin starts a transaction. It blocks while another transaction
// is active.
func (m *MeshBase) Begin() *Transaction {
	tx, _ := m.BeginContext(context.Background())
	return tx
}

// BeginContext starts a transaction. It waits for the end of an
// active transaction until the context is cancelled.
func (m *MeshBase) BeginContext(ctx context.Context) (*Transaction, error) {
	select {
	case m.txsem <- struct{}{}:
	case <-ctx.Done():
		return nil, &mesh.TransactionError{Reason: ctx.Err()}
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.tx = &Transaction{
		mb:     m,
		states: map[*meshObject]txstate{},
		bound:  map[*meshObject]*boundObject{},
	}
	log.Debug("transaction started for {{meshbase}}", "meshbase", m.name)
	return m.tx, nil
}

// Execute runs a function in a transaction. The transaction is
// committed if the function succeeds and rolled back otherwise.
func (m *MeshBase) Execute(f func(tx *Transaction) error) error {
	tx := m.Begin()
	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (t *Transaction) MeshBase() *MeshBase {
	return t.mb
}

// bind must be called under lock.
func (t *Transaction) bind(o *meshObject) *boundObject {
	b := t.bound[o]
	if b == nil {
		b = &boundObject{meshObject: o, tx: t}
		t.bound[o] = b
	}
	return b
}

// Object provides the handle of an object of the mesh base
// bound to this transaction.
func (t *Transaction) Object(obj mesh.MeshObject) (mesh.MeshObject, error) {
	o, err := t.mb.own(obj)
	if err != nil {
		return nil, err
	}
	t.mb.lock.Lock()
	defer t.mb.lock.Unlock()
	return t.bind(o), nil
}

// FindMeshObject provides the object with the given identifier
// bound to this transaction.
func (t *Transaction) FindMeshObject(id mesh.MeshObjectIdentifier) (mesh.MeshObject, error) {
	o, err := t.mb.find(id)
	if err != nil {
		return nil, err
	}
	t.mb.lock.Lock()
	defer t.mb.lock.Unlock()
	return t.bind(o), nil
}

// CreateMeshObject creates a new object blessed with the given types.
func (t *Transaction) CreateMeshObject(types ...modelbase.EntityType) (mesh.MeshObject, error) {
	m := t.mb
	for _, et := range types {
		if et.IsAbstract() {
			return nil, &mesh.IsAbstractError{EntityType: et}
		}
	}

	m.lock.Lock()
	if err := m.transaction(t, nil); err != nil {
		m.lock.Unlock()
		return nil, err
	}
	now := utils.NewTimestamp()
	o := &meshObject{
		mb:         m,
		id:         mesh.MeshObjectIdentifier(uuid.New().String()),
		loaded:     true,
		properties: map[modelbase.PropertyType]primitives.PropertyValue{},
		neighbors:  map[mesh.MeshObjectIdentifier][]modelbase.RoleType{},
		created:    now,
		updated:    now,
		read:       now,
	}
	m.cache[o.id] = o
	t.touch(o, stateCreated)
	t.queue(mesh.NewCreatedEvent(o))
	b := t.bind(o)
	m.lock.Unlock()

	if err := o.bless(t, types); err != nil {
		m.lock.Lock()
		t.forget(o)
		m.lock.Unlock()
		return nil, err
	}
	log.Debug("created mesh object {{id}} in {{meshbase}}", "id", o.id, "meshbase", m.name)
	return b, nil
}

// DeleteMeshObject deletes an object. The object is dead afterwards
// and its relationships are removed.
func (t *Transaction) DeleteMeshObject(obj mesh.MeshObject) error {
	m := t.mb
	o, err := m.own(obj)
	if err != nil {
		return err
	}
	if err := o.prepare(t); err != nil {
		return err
	}
	if m.access != nil {
		if err := m.access.CheckPermittedDelete(o); err != nil {
			return &mesh.NotPermittedError{Object: o, Operation: "delete", Reason: err}
		}
	}

	if err := o.modify(t); err != nil {
		return err
	}
	defer m.lock.Unlock()
	for _, id := range utils.OrderedMapKeys(o.neighbors) {
		n := m.object(id)
		if err := m.load(n); err != nil {
			return err
		}
		if n.dead {
			continue
		}
		delete(n.neighbors, o.id)
		n.updated = utils.NewTimestamp()
		t.touch(n, stateModified)
		t.queue(mesh.NewNeighborRemovedEvent(n, o.id))
	}
	o.dead = true
	t.touch(o, stateDeleted)
	t.queue(mesh.NewDeletedEvent(o))
	return nil
}

// touch must be called under lock.
func (t *Transaction) touch(o *meshObject, s txstate) {
	old, ok := t.states[o]
	if !ok {
		t.order = append(t.order, o)
	}
	t.states[o] = old | s
}

func (t *Transaction) touched(o *meshObject) bool {
	_, ok := t.states[o]
	return ok
}

// forget drops a created object. It must be called under lock.
func (t *Transaction) forget(o *meshObject) {
	delete(t.states, o)
	delete(t.bound, o)
	for i, e := range t.order {
		if e == o {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	var events []*mesh.ChangeEvent
	for _, e := range t.events {
		if e.Object != o.id {
			events = append(events, e)
		}
	}
	t.events = events
	o.dead = true
	delete(t.mb.cache, o.id)
}

// queue must be called under lock.
func (t *Transaction) queue(e *mesh.ChangeEvent) {
	t.events = append(t.events, e)
}

// Commit persists all modifications and dispatches the change events.
// If persisting fails, the transaction is rolled back and the
// database keeps its previous state.
func (t *Transaction) Commit() error {
	m := t.mb

	m.lock.Lock()
	if t.done {
		m.lock.Unlock()
		return &mesh.TransactionError{Reason: mesh.ErrTransactionDone}
	}
	err := t.persist()
	if err != nil {
		t.rollback()
		m.lock.Unlock()
		<-m.txsem
		log.LogError(err, "commit failed for {{meshbase}}", "meshbase", m.name)
		return &mesh.TransactionError{Reason: err}
	}
	events := t.events
	t.finish()
	m.lock.Unlock()
	<-m.txsem

	log.Debug("transaction committed for {{meshbase}} ({{objects}} objects, {{events}} events)",
		"meshbase", m.name, "objects", len(t.order), "events", len(events))
	for _, e := range events {
		m.dispatch.HandleEvent(e)
	}
	return nil
}

// Rollback drops all modifications. Touched objects are reloaded
// on their next access.
func (t *Transaction) Rollback() error {
	m := t.mb

	m.lock.Lock()
	if t.done {
		m.lock.Unlock()
		return &mesh.TransactionError{Reason: mesh.ErrTransactionDone}
	}
	t.rollback()
	m.lock.Unlock()
	<-m.txsem
	log.Debug("transaction rolled back for {{meshbase}}", "meshbase", m.name)
	return nil
}

// finish must be called under lock.
func (t *Transaction) finish() {
	t.done = true
	t.events = nil
	if t.mb.tx == t {
		t.mb.tx = nil
	}
}

// rollback must be called under lock.
func (t *Transaction) rollback() {
	for _, o := range t.order {
		o.loaded = false
		o.dead = false
		o.types = nil
		o.properties = nil
		o.neighbors = nil
		if t.states[o]&stateCreated != 0 {
			delete(t.mb.cache, o.id)
		}
	}
	t.finish()
}

// persist must be called under lock.
func (t *Transaction) persist() error {
	m := t.mb
	db := m.db

	// detect conflicts before writing anything
	previous := map[string]Object{}
	for _, o := range t.order {
		if t.states[o]&stateCreated != 0 {
			continue
		}
		cur, err := db.GetObject(m.objectId(o.id))
		if err != nil {
			if errors.Is(err, database.ErrNotExist) {
				return fmt.Errorf("mesh object %s deleted concurrently: %w", o.id, database.ErrModified)
			}
			return err
		}
		if cur.GetGeneration() != o.generation {
			return fmt.Errorf("mesh object %s: %w", o.id, database.ErrModified)
		}
		previous[string(o.id)] = cur
	}

	var set []Object
	var del []database.ObjectId
	written := map[*meshObject]*MeshObjectRecord{}
	for _, o := range t.order {
		s := t.states[o]
		switch {
		case s&stateDeleted != 0:
			if s&stateCreated == 0 {
				del = append(del, m.objectId(o.id))
			}
		default:
			r := o.record()
			set = append(set, r)
			written[o] = r
		}
	}

	var err error
	if b, ok := db.(database.BatchWriter[Object]); ok {
		err = b.WriteBatch(set, del)
	} else {
		err = t.write(set, del, previous)
	}
	if err != nil {
		return err
	}

	for o, r := range written {
		o.generation = r.GetGeneration()
	}
	for _, o := range t.order {
		if t.states[o]&stateDeleted != 0 {
			delete(m.cache, o.id)
		}
	}
	return nil
}

// write applies the changes one by one. If a change fails, the
// changes applied so far are reverted to the previous records.
func (t *Transaction) write(set []Object, del []database.ObjectId, previous map[string]Object) error {
	db := t.mb.db

	var undo []func() error
	revert := func(err error) error {
		for i := len(undo) - 1; i >= 0; i-- {
			if uerr := undo[i](); uerr != nil {
				log.LogError(uerr, "cannot revert partial commit for {{meshbase}}", "meshbase", t.mb.name)
				err = errors.Join(err, uerr)
			}
		}
		return err
	}

	for _, r := range set {
		if err := db.SetObject(r); err != nil {
			return revert(fmt.Errorf("mesh object %s: %w", r.GetName(), err))
		}
		prev := previous[r.GetName()]
		if prev == nil {
			id := database.NewObjectIdFor(r)
			undo = append(undo, func() error {
				return db.DeleteObject(id)
			})
		} else {
			gen := r.GetGeneration()
			undo = append(undo, func() error {
				prev.SetGeneration(gen)
				return db.SetObject(prev)
			})
		}
	}
	for _, id := range del {
		err := db.DeleteObject(id)
		if err != nil {
			if errors.Is(err, database.ErrNotExist) {
				continue
			}
			return revert(fmt.Errorf("mesh object %s: %w", id.GetName(), err))
		}
		if prev := previous[id.GetName()]; prev != nil {
			undo = append(undo, func() error {
				return db.SetObject(prev)
			})
		}
	}
	return nil
}
