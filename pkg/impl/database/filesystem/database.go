package filesystem

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/meshmodel/pkg/database"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// Database stores objects as YAML files in a directory tree.
// The path of an object is <type>/<namespace>/<name>.yaml.
type Database[O database.Object] struct {
	lock     sync.Mutex
	encoding database.Encoding[O]
	path     string
	fs       vfs.FileSystem

	database.HandlerRegistry
}

var (
	_ database.Database[database.Object] = (*Database[database.Object])(nil)
	_ database.HandlerRegistrationTest   = (*Database[database.Object])(nil)
)

func New[O database.Object](enc database.Encoding[O], path string, fss ...vfs.FileSystem) (database.Database[O], error) {
	fs := utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)

	err := fs.MkdirAll(path, 0o0700)
	if err != nil && !errors.Is(err, vfs.ErrExist) {
		return nil, err
	}

	d := &Database[O]{encoding: enc, path: path, fs: fs}
	d.HandlerRegistry = database.NewHandlerRegistry(d)
	log.Info("filesystem database at {{path}}", "path", path)
	return d, nil
}

func (d *Database[O]) SchemeTypes() database.SchemeTypes[O] {
	return d.encoding
}

func (d *Database[O]) ListObjectIds(typ string, ns string, atomic ...func()) ([]database.ObjectId, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	for _, f := range atomic {
		f()
	}

	var types []string
	if typ == "" {
		list, err := vfs.ReadDir(d.fs, d.path)
		if err != nil {
			return nil, err
		}
		for _, e := range list {
			if e.IsDir() {
				types = append(types, e.Name())
			}
		}
	} else {
		types = []string{typ}
	}

	var result []database.ObjectId
	for _, t := range types {
		err := d.list(t, ns, ns == "", func(id database.ObjectId) error {
			result = append(result, id)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (d *Database[O]) ListObjects(typ, ns string) ([]O, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	var result []O
	err := d.list(typ, ns, ns == "", func(id database.ObjectId) error {
		o, err := d.get(id)
		if err != nil {
			return err
		}
		result = append(result, o)
		return nil
	})
	return result, err
}

// list walks the objects of a type in a namespace. With closure set
// nested namespaces are included.
func (d *Database[O]) list(typ, ns string, closure bool, f func(id database.ObjectId) error) error {
	list, err := vfs.ReadDir(d.fs, d.Path(filepath.Join(typ, ns)))
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, e := range list {
		if e.IsDir() {
			if closure {
				err := d.list(typ, filepath.Join(ns, e.Name()), closure, f)
				if err != nil {
					return err
				}
			}
		} else {
			if strings.HasSuffix(e.Name(), ".yaml") {
				err := f(database.NewObjectId(typ, filepath.ToSlash(ns), strings.TrimSuffix(e.Name(), ".yaml")))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *Database[O]) GetObject(id database.ObjectId) (O, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.get(id)
}

func (d *Database[O]) get(id database.ObjectId) (O, error) {
	var _nil O

	path := d.OPath(id)
	data, err := vfs.ReadFile(d.fs, path)
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return _nil, fmt.Errorf("%s: %w", database.StringId(id), database.ErrNotExist)
		}
		return _nil, err
	}
	o, err := d.encoding.Decode(data)
	if err != nil {
		return _nil, err
	}

	if !database.EqualObjectId(o, id) {
		return _nil, fmt.Errorf("corrupted database: %s does not contain object with id %s", path, database.StringId(id))
	}
	return o, nil
}

func (d *Database[O]) SetObject(o O) error {
	if !CheckName(o.GetName()) {
		return fmt.Errorf("invalid object name %q", o.GetName())
	}
	if !CheckNamespace(o.GetNamespace()) {
		return fmt.Errorf("invalid namespace %q", o.GetNamespace())
	}

	err := d.setObject(o)
	if err == nil {
		d.TriggerEvent(o)
	}
	return err
}

func (d *Database[O]) setObject(o O) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	path := d.OPath(o)

	gen := int64(-1)
	if g, ok := any(o).(database.GenerationAccess); ok {
		old, err := d.get(o)
		if err != nil {
			if !errors.Is(err, database.ErrNotExist) {
				return err
			}
		} else {
			if database.GetGeneration(old) != g.GetGeneration() {
				return database.ErrModified
			}
		}
		gen = g.GetGeneration()
		g.SetGeneration(gen + 1)
	}

	data, err := d.encoding.Encode(o)
	if err == nil {
		err = d.fs.MkdirAll(filepath.Dir(path), 0o700)
	}
	if err == nil {
		err = vfs.WriteFile(d.fs, path, data, 0o600)
	}
	if err != nil && gen >= 0 {
		any(o).(database.GenerationAccess).SetGeneration(gen)
	}
	return err
}

func (d *Database[O]) DeleteObject(id database.ObjectId) error {
	err := d.deleteObject(id)
	if err == nil {
		d.TriggerEvent(id)
	}
	return err
}

func (d *Database[O]) deleteObject(id database.ObjectId) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	err := d.fs.Remove(d.OPath(id))
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return fmt.Errorf("%s: %w", database.StringId(id), database.ErrNotExist)
		}
		return err
	}
	return nil
}

func (d *Database[O]) Path(path string) string {
	return filepath.Join(d.path, path)
}

func (d *Database[O]) OPath(id database.ObjectId) string {
	return filepath.Join(d.path, Path(id))
}
