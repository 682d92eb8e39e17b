package modelbase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandelsoft/vfs/pkg/vfs"
)

// ReadDirectory reads all subject area specifications (*.yaml, *.yml)
// found in a directory.
func ReadDirectory(fs vfs.FileSystem, dir string) ([]*SubjectAreaSpecification, error) {
	list, err := vfs.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var specs []*SubjectAreaSpecification
	for _, fi := range list {
		if fi.IsDir() {
			continue
		}
		ext := filepath.Ext(fi.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, fi.Name())
		data, err := vfs.ReadFile(fs, path)
		if err != nil {
			return nil, err
		}
		spec, err := ParseSubjectArea(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Debug("found subject area {{name}} in {{file}}", "name", spec.Name, "file", path)
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadDirectory loads all subject areas found in a directory
// in the order of their dependencies.
func LoadDirectory(mb ModelBase, fs vfs.FileSystem, dir string) ([]SubjectArea, error) {
	specs, err := ReadDirectory(fs, dir)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no subject area found in %s", strings.TrimSuffix(dir, "/"))
	}
	return mb.LoadSubjectAreas(specs...)
}
