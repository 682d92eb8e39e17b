package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/mandelsoft/meshmodel/pkg/database"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/meshbase"
	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	"github.com/mandelsoft/meshmodel/pkg/server"
	"github.com/mandelsoft/meshmodel/pkg/utils"
	"github.com/mandelsoft/meshmodel/watch"
)

const (
	MODEL_PATH = "model"
	WATCH_PATH = "/watch"

	MAX_REQUEST_SIZE = 1 << 20
)

// MeshBaseAccess serves the objects of a MeshBase under a path prefix,
// the loaded model under MODEL_PATH below this prefix, and change
// events under WATCH_PATH.
type MeshBaseAccess struct {
	meshbase *meshbase.MeshBase
	prefix   string
	watch    *watch.RequestHandler[mesh.WatchRequest, *mesh.ChangeEvent]
}

func New(mb *meshbase.MeshBase, prefix string) *MeshBaseAccess {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &MeshBaseAccess{
		meshbase: mb,
		prefix:   prefix,
		watch:    watch.WatchHttpHandler[mesh.WatchRequest, *mesh.ChangeEvent](mb),
	}
}

func (a *MeshBaseAccess) RegisterHandler(srv *server.Server) {
	srv.Handle(a.prefix, a)
	srv.Handle(WATCH_PATH, a.watch)
}

// Close closes all open watch connections.
func (a *MeshBaseAccess) Close() error {
	return a.watch.Close()
}

func (a *MeshBaseAccess) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	id := strings.Trim(req.URL.Path[len(a.prefix):], "/")
	log.Debug("{{method}} {{path}}", "method", req.Method, "path", req.URL.Path)

	if id == MODEL_PATH || strings.HasPrefix(id, MODEL_PATH+"/") {
		a.serveModel(w, req, strings.Trim(id[len(MODEL_PATH):], "/"))
		return
	}

	var result interface{}
	var err error
	status := http.StatusOK

	switch req.Method {
	case "LIST":
		if id != "" {
			err = newError(http.StatusBadRequest, "no object identifier expected for LIST")
		} else {
			result, err = a.list()
		}
	case http.MethodGet:
		if id == "" {
			result, err = a.list()
		} else {
			result, err = a.get(mesh.MeshObjectIdentifier(id))
		}
	case http.MethodPost:
		if id != "" {
			err = newError(http.StatusBadRequest, "no object identifier expected for POST")
			break
		}
		var r CreateRequest
		if err = decode(w, req, &r); err == nil {
			result, err = a.create(&r)
			status = http.StatusCreated
		}
	case http.MethodPut:
		if id == "" {
			err = newError(http.StatusBadRequest, "object identifier required")
			break
		}
		var r UpdateRequest
		if err = decode(w, req, &r); err == nil {
			result, err = a.update(mesh.MeshObjectIdentifier(id), &r)
		}
	case http.MethodDelete:
		if id == "" {
			err = newError(http.StatusBadRequest, "object identifier required")
			break
		}
		err = a.delete(mesh.MeshObjectIdentifier(id))
	default:
		err = newError(http.StatusMethodNotAllowed, "method %s not supported", req.Method)
	}
	if err != nil {
		status = StatusFor(err)
		log.Debug("{{method}} {{path}} failed: {{error}}", "method", req.Method, "path", req.URL.Path, "error", err)
		result = &Error{err.Error()}
	}
	write(w, status, result)
}

func (a *MeshBaseAccess) list() (*Items[*ObjectView], error) {
	list, err := a.meshbase.ListMeshObjects()
	if err != nil {
		return nil, err
	}
	items := &Items[*ObjectView]{Items: []*ObjectView{}}
	for _, o := range list {
		v, err := NewObjectView(o)
		if err != nil {
			return nil, err
		}
		items.Items = append(items.Items, v)
	}
	return items, nil
}

func (a *MeshBaseAccess) get(id mesh.MeshObjectIdentifier) (*ObjectView, error) {
	o, err := a.meshbase.FindMeshObject(id)
	if err != nil {
		return nil, err
	}
	return NewObjectView(o)
}

func (a *MeshBaseAccess) entityTypes(ids []modelbase.Identifier) ([]modelbase.EntityType, error) {
	var types []modelbase.EntityType
	for _, id := range ids {
		et, err := a.meshbase.ModelBase().FindEntityType(id)
		if err != nil {
			return nil, err
		}
		types = append(types, et)
	}
	return types, nil
}

func (a *MeshBaseAccess) values(types []modelbase.EntityType, props map[string]*string) (map[modelbase.PropertyType]primitives.PropertyValue, error) {
	values := map[modelbase.PropertyType]primitives.PropertyValue{}
	for k, s := range props {
		pt, err := ResolvePropertyType(a.meshbase.ModelBase(), types, k)
		if err != nil {
			return nil, err
		}
		var v primitives.PropertyValue
		if s != nil {
			v, err = pt.DataType().Parse(*s)
			if err != nil {
				return nil, &mesh.IllegalPropertyValueError{PropertyType: pt, Reason: err}
			}
		}
		values[pt] = v
	}
	return values, nil
}

func (a *MeshBaseAccess) create(r *CreateRequest) (*ObjectView, error) {
	if len(r.Types) == 0 {
		return nil, newError(http.StatusBadRequest, "at least one entity type required")
	}
	types, err := a.entityTypes(r.Types)
	if err != nil {
		return nil, err
	}
	values, err := a.values(types, r.Properties)
	if err != nil {
		return nil, err
	}

	var obj mesh.MeshObject
	err = a.meshbase.Execute(func(tx *meshbase.Transaction) error {
		var err error
		obj, err = tx.CreateMeshObject(types...)
		if err == nil && len(values) > 0 {
			err = obj.SetPropertyValues(values)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info("created mesh object {{id}}", "id", obj.Identifier())
	return NewObjectView(obj)
}

func (a *MeshBaseAccess) roleTypes(ids []modelbase.Identifier) ([]modelbase.RoleType, error) {
	var roles []modelbase.RoleType
	for _, id := range ids {
		rt, err := a.meshbase.ModelBase().FindRoleType(id)
		if err != nil {
			return nil, err
		}
		roles = append(roles, rt)
	}
	return roles, nil
}

func (a *MeshBaseAccess) update(id mesh.MeshObjectIdentifier, r *UpdateRequest) (*ObjectView, error) {
	bless, err := a.entityTypes(r.Bless)
	if err != nil {
		return nil, err
	}
	unbless, err := a.entityTypes(r.Unbless)
	if err != nil {
		return nil, err
	}
	relate := map[mesh.MeshObjectIdentifier][]modelbase.RoleType{}
	for _, rel := range r.Relate {
		roles, err := a.roleTypes(rel.Roles)
		if err != nil {
			return nil, err
		}
		relate[rel.Neighbor] = append(relate[rel.Neighbor], roles...)
	}

	var obj mesh.MeshObject
	err = a.meshbase.Execute(func(tx *meshbase.Transaction) error {
		var err error
		obj, err = tx.FindMeshObject(id)
		if err != nil {
			return err
		}
		if err := obj.Bless(bless...); err != nil {
			return err
		}
		for _, rel := range r.Relate {
			roles, ok := relate[rel.Neighbor]
			if !ok {
				continue
			}
			delete(relate, rel.Neighbor)
			if err := a.relate(tx, obj, rel.Neighbor, roles); err != nil {
				return err
			}
		}
		for _, nid := range r.Unrelate {
			n, err := tx.FindMeshObject(nid)
			if err != nil {
				return err
			}
			if err := obj.Unrelate(n); err != nil {
				return err
			}
		}
		if err := obj.Unbless(unbless...); err != nil {
			return err
		}
		values, err := a.values(obj.Types(), r.Properties)
		if err != nil || len(values) == 0 {
			return err
		}
		return obj.SetPropertyValues(values)
	})
	if err != nil {
		return nil, err
	}
	return NewObjectView(obj)
}

// relate relates a neighbor, if not yet related, and blesses the
// relationship with the role types not yet played.
func (a *MeshBaseAccess) relate(tx *meshbase.Transaction, obj mesh.MeshObject, nid mesh.MeshObjectIdentifier, roles []modelbase.RoleType) error {
	n, err := tx.FindMeshObject(nid)
	if err != nil {
		return err
	}
	if !obj.IsRelated(n) {
		return obj.RelateAndBless(n, roles...)
	}
	current, err := obj.RoleTypes(n)
	if err != nil {
		return err
	}
	return obj.BlessRelationship(n, utils.FilterSlice(roles, func(r modelbase.RoleType) bool { return !slices.Contains(current, r) })...)
}

func (a *MeshBaseAccess) delete(id mesh.MeshObjectIdentifier) error {
	return a.meshbase.Execute(func(tx *meshbase.Transaction) error {
		obj, err := tx.FindMeshObject(id)
		if err != nil {
			return err
		}
		return tx.DeleteMeshObject(obj)
	})
}

func (a *MeshBaseAccess) serveModel(w http.ResponseWriter, req *http.Request, name string) {
	if req.Method != http.MethodGet && req.Method != "LIST" {
		write(w, http.StatusMethodNotAllowed, &Error{fmt.Sprintf("method %s not supported", req.Method)})
		return
	}
	mb := a.meshbase.ModelBase()
	if name == "" {
		items := &Items[*SubjectAreaInfo]{Items: []*SubjectAreaInfo{}}
		for _, sa := range mb.SubjectAreas() {
			items.Items = append(items.Items, NewSubjectAreaInfo(sa))
		}
		write(w, http.StatusOK, items)
		return
	}
	sa, err := mb.FindSubjectArea(modelbase.Identifier(name))
	if err != nil {
		write(w, StatusFor(err), &Error{err.Error()})
		return
	}
	write(w, http.StatusOK, sa.Specification())
}

////////////////////////////////////////////////////////////////////////////////

// ResolvePropertyType resolves a property key. It is either a
// property type identifier or a name local to one of the given types.
func ResolvePropertyType(mb modelbase.ModelBase, types []modelbase.EntityType, key string) (modelbase.PropertyType, error) {
	if strings.Contains(key, "/") {
		pt, err := mb.FindPropertyType(modelbase.Identifier(key))
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, mesh.ErrIllegalPropertyType)
		}
		return pt, nil
	}
	var found modelbase.PropertyType
	for _, et := range types {
		pt := et.FindPropertyTypeByName(key)
		if pt == nil {
			continue
		}
		if found != nil && found != pt {
			return nil, fmt.Errorf("property name %q is ambiguous (%s, %s): %w", key, found.Identifier(), pt.Identifier(), mesh.ErrIllegalPropertyType)
		}
		found = pt
	}
	if found == nil {
		return nil, fmt.Errorf("unknown property %q: %w", key, mesh.ErrIllegalPropertyType)
	}
	return found, nil
}

type statusError struct {
	status int
	msg    string
}

func newError(status int, msg string, args ...interface{}) error {
	return &statusError{status, fmt.Sprintf(msg, args...)}
}

func (e *statusError) Error() string {
	return e.msg
}

// StatusFor maps an error to an http status code.
func StatusFor(err error) int {
	var serr *statusError
	switch {
	case errors.As(err, &serr):
		return serr.status
	case errors.Is(err, mesh.ErrObjectNotFound), errors.Is(err, mesh.ErrObjectDead), errors.Is(err, modelbase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, mesh.ErrNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, mesh.ErrIllegalPropertyValue),
		errors.Is(err, mesh.ErrIllegalPropertyType),
		errors.Is(err, mesh.ErrPropertyReadOnly),
		errors.Is(err, mesh.ErrIsAbstract),
		errors.Is(err, mesh.ErrBlessedAlready),
		errors.Is(err, mesh.ErrNotBlessed),
		errors.Is(err, mesh.ErrRelatedAlready),
		errors.Is(err, mesh.ErrNotRelated),
		errors.Is(err, mesh.ErrRoleBlessedAlready),
		errors.Is(err, mesh.ErrRoleNotBlessed),
		errors.Is(err, mesh.ErrRoleRequiresEntity),
		errors.Is(err, mesh.ErrMultiplicity),
		errors.Is(err, mesh.ErrRelateToSelf):
		return http.StatusUnprocessableEntity
	case errors.Is(err, mesh.ErrTransaction), errors.Is(err, database.ErrModified):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// decode reads a JSON request body of at most MAX_REQUEST_SIZE bytes.
func decode(w http.ResponseWriter, req *http.Request, v interface{}) error {
	t := req.Header.Get("Content-Type")
	if t != "" && t != "application/json" {
		return newError(http.StatusUnsupportedMediaType, "content type %q not supported", t)
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, req.Body, MAX_REQUEST_SIZE))
	if err != nil {
		var merr *http.MaxBytesError
		if errors.As(err, &merr) {
			return newError(http.StatusRequestEntityTooLarge, "request body exceeds %d bytes", merr.Limit)
		}
		return newError(http.StatusBadRequest, "cannot read request: %s", err)
	}
	err = json.Unmarshal(data, v)
	if err != nil {
		return newError(http.StatusBadRequest, "invalid request: %s", err)
	}
	return nil
}

func write(w http.ResponseWriter, status int, v interface{}) {
	var data []byte
	if v != nil {
		var err error
		data, err = json.Marshal(v)
		if err != nil {
			log.LogError(err, "cannot marshal response")
			status = http.StatusInternalServerError
			data, _ = json.Marshal(&Error{err.Error()})
		}
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	if data != nil {
		w.Write(data)
	}
}
