package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mandelsoft/meshmodel/pkg/database"
	"github.com/mandelsoft/meshmodel/pkg/server"
)

// DatabaseAccess provides read access to the raw records of a
// database under a path prefix. Records are addressed by
// <prefix>/<type>/<namespace>/<name>. LIST requests accept a
// type and a namespace, where * matches all namespaces.
// Modifications are only possible through the MeshBase owning
// the database.
type DatabaseAccess[O database.Object] struct {
	database database.Database[O]
	prefix   string
}

func New[O database.Object](db database.Database[O], prefix string) *DatabaseAccess[O] {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &DatabaseAccess[O]{
		database: db,
		prefix:   prefix,
	}
}

func (a *DatabaseAccess[O]) RegisterHandler(srv *server.Server) {
	srv.Handle(a.prefix, a)
}

func (a *DatabaseAccess[O]) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var result interface{}
	var err error
	status := http.StatusOK

	comps := strings.Split(strings.Trim(req.URL.Path[len(a.prefix):], "/"), "/")
	log.Debug("{{method}} {{path}}", "method", req.Method, "path", req.URL.Path)

	switch req.Method {
	case http.MethodGet:
		if len(comps) < 2 {
			status, err = http.StatusBadRequest, errors.New("invalid path, <type>/<namespace>/<name> expected")
			break
		}
		oid := database.NewObjectId(comps[0], strings.Join(comps[1:len(comps)-1], "/"), comps[len(comps)-1])
		result, err = a.database.GetObject(oid)
		if errors.Is(err, database.ErrNotExist) {
			status = http.StatusNotFound
		}

	case "LIST":
		typ, ns := comps[0], strings.Join(comps[1:], "/")
		if typ == "" || typ == "*" {
			status, err = http.StatusBadRequest, errors.New("object type required")
			break
		}
		if ns == "*" {
			ns = ""
		}
		var list []O
		list, err = a.database.ListObjects(typ, ns)
		if err == nil {
			result = &Items[O]{Items: list}
		}

	default:
		status, err = http.StatusMethodNotAllowed, errors.New("method not allowed")
	}

	if err != nil {
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
		log.Debug("request {{method}} {{path}} failed: {{error}}", "method", req.Method, "path", req.URL.Path, "error", err)
		result = &Error{err.Error()}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, _ := json.Marshal(result)
	w.Write(data)
}

type Error struct {
	Error string `json:"error"`
}

type Items[O database.Object] struct {
	Items []O `json:"items"`
}
