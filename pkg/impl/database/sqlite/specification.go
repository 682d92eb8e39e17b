package sqlite

import (
	"github.com/mandelsoft/meshmodel/pkg/database"
)

type Specification[O database.Object] struct {
	DSN string
}

var _ database.Specification[database.Object] = (*Specification[database.Object])(nil)

func NewSpecification[O database.Object](dsn string) *Specification[O] {
	return &Specification[O]{DSN: dsn}
}

func (s *Specification[O]) Create(enc database.Encoding[O]) (database.Database[O], error) {
	return New[O](enc, s.DSN)
}
