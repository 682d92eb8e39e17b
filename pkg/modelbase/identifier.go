package modelbase

import (
	"strings"
)

// Identifier identifies meta types. The identifier of a subject area
// is its name. All other meta types are identified relative to their
// subject area by <subject area>/<local name>.
type Identifier string

func NewIdentifier(sa string, local ...string) Identifier {
	if len(local) == 0 || local[0] == "" {
		return Identifier(sa)
	}
	return Identifier(sa + "/" + local[0])
}

// SubjectArea provides the identifier of the subject area.
func (i Identifier) SubjectArea() Identifier {
	sa, _, _ := strings.Cut(string(i), "/")
	return Identifier(sa)
}

// LocalName provides the name relative to the subject area.
// It is empty for a subject area identifier.
func (i Identifier) LocalName() string {
	_, l, _ := strings.Cut(string(i), "/")
	return l
}

func (i Identifier) IsSubjectArea() bool {
	return !strings.Contains(string(i), "/")
}

// Child provides the identifier for a local name in the
// subject area given by the identifier.
func (i Identifier) Child(local string) Identifier {
	return NewIdentifier(string(i.SubjectArea()), local)
}

func (i Identifier) String() string {
	return string(i)
}

func CompareIdentifier(a, b Identifier) int {
	return strings.Compare(string(a), string(b))
}
