package testutils

import (
	"path"

	"github.com/mandelsoft/vfs/pkg/composefs"
	"github.com/mandelsoft/vfs/pkg/layerfs"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/readonlyfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem provides the directory path of the os filesystem, for
// example a testdata folder with model files or database records, under
// the same path of a new filesystem.
// Unless readonly is set, modifications are kept in a temporary layer and
// never reach the original directory.
func TestFileSystem(path string, readonly bool) (vfs.FileSystem, error) {
	base, err := projectionfs.New(osfs.OsFs, path)
	if err != nil {
		return nil, err
	}

	root := memoryfs.New()
	if err := root.MkdirAll(path, 0o700); err != nil {
		return nil, err
	}

	var mounted vfs.FileSystem
	if readonly {
		mounted = readonlyfs.New(base)
	} else {
		tmp, err := osfs.NewTempFileSystem()
		if err != nil {
			return nil, err
		}
		mounted = layerfs.New(tmp, base)
	}

	fs := composefs.New(root, "/tmp")
	if err := fs.Mount(path, mounted); err != nil {
		return nil, err
	}
	return fs, nil
}

// FileSystemWith creates a memory filesystem containing the given files.
// Missing parent directories are created.
func FileSystemWith(files map[string]string) (vfs.FileSystem, error) {
	fs := memoryfs.New()
	for name, content := range files {
		if err := fs.MkdirAll(path.Dir(name), 0o700); err != nil {
			return nil, err
		}
		if err := vfs.WriteFile(fs, name, []byte(content), 0o600); err != nil {
			return nil, err
		}
	}
	return fs, nil
}
