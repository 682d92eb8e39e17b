package filesystem

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mandelsoft/meshmodel/pkg/database"
)

var nameExp = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_.]*$")

// CheckName checks whether a name can be used as file name.
func CheckName(name string) bool {
	return nameExp.MatchString(name) && !strings.HasSuffix(name, ".")
}

// CheckNamespace checks a slash separated namespace path.
func CheckNamespace(ns string) bool {
	if ns == "" {
		return true
	}
	for _, s := range strings.Split(ns, "/") {
		if !CheckName(s) {
			return false
		}
	}
	return true
}

// Path provides the relative file path of an object.
func Path(o database.ObjectId) string {
	return filepath.Join(o.GetType(), o.GetNamespace(), o.GetName()+".yaml")
}
