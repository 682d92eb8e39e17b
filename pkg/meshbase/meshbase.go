package meshbase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/meshmodel/pkg/database"
	"github.com/mandelsoft/meshmodel/pkg/events"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/utils"
	"github.com/mandelsoft/meshmodel/watch"
)

type options struct {
	modelBase modelbase.ModelBase
	access    mesh.AccessManager
	async     context.Context
}

type Option func(*options)

// WithModelBase sets the model base used to resolve persisted
// types. The default is the process wide singleton.
func WithModelBase(mb modelbase.ModelBase) Option {
	return func(o *options) {
		o.modelBase = mb
	}
}

func WithAccessManager(am mesh.AccessManager) Option {
	return func(o *options) {
		o.access = am
	}
}

// WithAsyncDispatch delivers change events by a dispatcher
// running until the given context is cancelled.
func WithAsyncDispatch(ctx context.Context) Option {
	return func(o *options) {
		o.async = ctx
	}
}

// MeshBase manages the MeshObjects stored in a database
// namespace. Modifications require a transaction. There is
// at most one active transaction at any time. Only the handles
// provided by the active transaction may modify objects.
type MeshBase struct {
	name   string
	db     database.Database[Object]
	mb     modelbase.ModelBase
	access mesh.AccessManager

	txsem chan struct{}

	lock  sync.Mutex
	cache map[mesh.MeshObjectIdentifier]*meshObject
	tx    *Transaction

	handlers events.HandlerRegistry[*mesh.ChangeEvent]
	dispatch mesh.EventHandler
	async    *events.AsyncHandler[*mesh.ChangeEvent]
}

var (
	_ events.ObjectLister[*mesh.ChangeEvent]               = (*MeshBase)(nil)
	_ watch.Registry[mesh.WatchRequest, *mesh.ChangeEvent] = (*MeshBase)(nil)
)

func New(name string, db database.Database[Object], opts ...Option) (*MeshBase, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid mesh base name %q", name)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.modelBase == nil {
		o.modelBase = modelbase.Singleton()
	}
	m := &MeshBase{
		name:   name,
		db:     db,
		mb:     o.modelBase,
		access: o.access,
		txsem:  make(chan struct{}, 1),
		cache:  map[mesh.MeshObjectIdentifier]*meshObject{},
	}
	m.handlers = events.NewHandlerRegistry[*mesh.ChangeEvent](m)
	m.dispatch = m.handlers
	if o.async != nil {
		m.async = events.NewAsyncHandler[*mesh.ChangeEvent]("meshbase/"+name, m.handlers)
		m.async.Start(o.async)
		m.dispatch = m.async
	}
	log.Info("mesh base {{name}} created", "name", name)
	return m, nil
}

func (m *MeshBase) Name() string {
	return m.name
}

func (m *MeshBase) ModelBase() modelbase.ModelBase {
	return m.mb
}

// Wait waits for the async event dispatcher to finish after
// its context has been cancelled.
func (m *MeshBase) Wait() {
	if m.async != nil {
		m.async.Wait()
	}
}

// Close closes the underlying database, if it supports closing.
func (m *MeshBase) Close() error {
	if c, ok := m.db.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (m *MeshBase) objectId(id mesh.MeshObjectIdentifier) database.ObjectId {
	return database.NewObjectId(TYPE_MESHOBJECT, m.name, string(id))
}

// object provides the cached object handle. It must be called under lock.
func (m *MeshBase) object(id mesh.MeshObjectIdentifier) *meshObject {
	o := m.cache[id]
	if o == nil {
		o = &meshObject{mb: m, id: id}
		m.cache[id] = o
	}
	return o
}

// load loads the persisted state if required. It must be called under lock.
func (m *MeshBase) load(o *meshObject) error {
	if o.loaded {
		return nil
	}
	r, err := m.db.GetObject(m.objectId(o.id))
	if err != nil {
		if errors.Is(err, database.ErrNotExist) {
			o.loaded = true
			o.dead = true
			return nil
		}
		return err
	}
	rec, ok := r.(*MeshObjectRecord)
	if !ok {
		return fmt.Errorf("unexpected object type %T for %s", r, o.id)
	}
	return o.apply(m.mb, rec)
}

// transaction checks whether tx is the active transaction.
// It must be called under lock.
func (m *MeshBase) transaction(tx *Transaction, obj mesh.MeshObject) error {
	var reason error
	switch {
	case tx == nil:
		reason = mesh.ErrNoTransaction
	case tx.done:
		reason = mesh.ErrTransactionDone
	case tx.mb != m || m.tx != tx:
		reason = mesh.ErrForeignTransaction
	default:
		return nil
	}
	return &mesh.TransactionError{Object: obj, Reason: reason}
}

// handle provides the handle of an object used by a transaction.
// It must be called under lock.
func (m *MeshBase) handle(tx *Transaction, o *meshObject) mesh.MeshObject {
	if tx == nil {
		return o
	}
	return tx.bind(o)
}

// FindMeshObject provides the object with the given identifier.
// The provided handle is read-only; use Transaction.FindMeshObject
// to modify the object.
func (m *MeshBase) FindMeshObject(id mesh.MeshObjectIdentifier) (mesh.MeshObject, error) {
	o, err := m.find(id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (m *MeshBase) find(id mesh.MeshObjectIdentifier) (*meshObject, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	o := m.object(id)
	if err := m.load(o); err != nil {
		if m.tx == nil || !m.tx.touched(o) {
			delete(m.cache, id)
		}
		return nil, err
	}
	if o.dead {
		if m.tx == nil || !m.tx.touched(o) {
			delete(m.cache, id)
		}
		return nil, &mesh.ObjectNotFoundError{Identifier: id}
	}
	return o, nil
}

// own provides the state of a handle of this mesh base.
func (m *MeshBase) own(obj mesh.MeshObject) (*meshObject, error) {
	if obj == nil {
		return nil, fmt.Errorf("no mesh object")
	}
	if f, ok := obj.(interface{ GetMeshObject() mesh.MeshObject }); ok {
		obj = f.GetMeshObject()
	}
	var o *meshObject
	switch h := obj.(type) {
	case *meshObject:
		o = h
	case *boundObject:
		o = h.meshObject
	}
	if o == nil || o.mb != m {
		return nil, fmt.Errorf("mesh object %s does not belong to mesh base %s", obj.Identifier(), m.name)
	}
	return o, nil
}

// ListMeshObjects provides all living objects.
func (m *MeshBase) ListMeshObjects() ([]mesh.MeshObject, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	ids, err := m.db.ListObjectIds(TYPE_MESHOBJECT, m.name)
	if err != nil {
		return nil, err
	}
	var list []*meshObject
	for _, id := range ids {
		list = append(list, m.object(mesh.MeshObjectIdentifier(id.GetName())))
	}
	if m.tx != nil {
		for _, o := range m.tx.order {
			if !slices.Contains(list, o) {
				list = append(list, o)
			}
		}
	}

	var result []mesh.MeshObject
	for _, o := range list {
		if err := m.load(o); err != nil {
			return nil, err
		}
		if !o.dead {
			result = append(result, o)
		}
	}
	slices.SortFunc(result, func(a, b mesh.MeshObject) int {
		return strings.Compare(string(a.Identifier()), string(b.Identifier()))
	})
	return result, nil
}

////////////////////////////////////////////////////////////////////////////////
// events

// ListObjectIds provides Created events for all persisted objects.
// It is used to ramp up handlers registered for the current state.
func (m *MeshBase) ListObjectIds(kind string, ns string, atomic ...func()) ([]*mesh.ChangeEvent, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, a := range atomic {
		defer a()
	}
	if (kind != "" && kind != mesh.EVENT_CREATED) || (ns != "" && ns != m.name) {
		return nil, nil
	}

	ids, err := m.db.ListObjectIds(TYPE_MESHOBJECT, m.name)
	if err != nil {
		return nil, err
	}
	var result []*mesh.ChangeEvent
	for _, id := range ids {
		o := m.object(mesh.MeshObjectIdentifier(id.GetName()))
		if err := m.load(o); err != nil {
			return nil, err
		}
		if !o.dead {
			result = append(result, mesh.NewEvent(mesh.EVENT_CREATED, m.name, o.id, o.created))
		}
	}
	return result, nil
}

// RegisterHandler registers a handler for an event kind. The empty kind
// matches all kinds.
func (m *MeshBase) RegisterHandler(h mesh.EventHandler, current bool, kind string) utils.Sync {
	return m.handlers.RegisterHandler(h, current, kind, m.name)
}

func (m *MeshBase) UnregisterHandler(h mesh.EventHandler, kind string) {
	m.handlers.UnregisterHandler(h, kind, m.name)
}

func kinds(req mesh.WatchRequest) []string {
	if len(req.Kinds) == 0 {
		return []string{""}
	}
	return req.Kinds
}

func (m *MeshBase) RegisterWatchHandler(req mesh.WatchRequest, h watch.EventHandler[*mesh.ChangeEvent]) {
	if req.MeshBase != "" && req.MeshBase != m.name {
		log.Warn("watch request for foreign mesh base {{name}} ignored", "name", req.MeshBase)
		return
	}
	for _, k := range kinds(req) {
		m.RegisterHandler(h, req.Current, k)
	}
}

func (m *MeshBase) UnregisterWatchHandler(req mesh.WatchRequest, h watch.EventHandler[*mesh.ChangeEvent]) {
	for _, k := range kinds(req) {
		m.UnregisterHandler(h, k)
	}
}
