package server

import (
	"net/http"
	"path"
	"strings"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// DirectoryHandler publishes the files of a directory under a path prefix.
// If suffixes are configured, only files with one of these suffixes are
// served, for example the model files of a mesh base.
type DirectoryHandler struct {
	fs       vfs.FileSystem
	prefix   string
	suffixes []string
	files    http.Handler
}

var _ http.Handler = (*DirectoryHandler)(nil)

func NewDirectoryHandlerFor(dir, prefix string, suffixes ...string) (*DirectoryHandler, error) {
	fs, err := projectionfs.New(osfs.OsFs, dir)
	if err != nil {
		return nil, err
	}
	return NewDirectoryHandler(fs, prefix, suffixes...), nil
}

func NewDirectoryHandler(fs vfs.FileSystem, prefix string, suffixes ...string) *DirectoryHandler {
	prefix = strings.TrimSuffix(prefix, "/") + "/"
	return &DirectoryHandler{
		fs:       fs,
		prefix:   prefix,
		suffixes: suffixes,
		files:    http.StripPrefix(prefix, http.FileServer(http.FS(vfs.AsIoFS(fs)))),
	}
}

func (d *DirectoryHandler) RegisterHandler(srv *Server) {
	srv.Handle(d.prefix, d)
}

func (d *DirectoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debug("{{method}} serving {{url}}", "method", r.Method, "url", r.URL)
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !d.accepts(strings.TrimPrefix(r.URL.Path, d.prefix)) {
		http.NotFound(w, r)
		return
	}
	d.files.ServeHTTP(w, r)
}

func (d *DirectoryHandler) accepts(name string) bool {
	if len(d.suffixes) == 0 {
		return true
	}
	name = path.Clean("/" + name)
	if ok, err := vfs.IsDir(d.fs, name); ok && err == nil {
		return true
	}
	for _, s := range d.suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
