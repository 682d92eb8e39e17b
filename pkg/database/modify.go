package database

import (
	"errors"
	"fmt"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

// Modify applies mod to an object and stores it, if mod reports a change.
// If the stored object has been modified concurrently, the current state is
// read from the database and mod is applied again.
// On success obj is updated to the stored state.
// O must be a sub type of DBO.
func Modify[O Object, R any, DBO Object](db Database[DBO], obj *O, mod func(O) (R, bool)) (R, error) {
	o := *obj
	for {
		r, modified := mod(o)
		if !modified {
			*obj = o
			return r, nil
		}
		err := db.SetObject(utils.Cast[DBO](o))
		if err == nil {
			*obj = o
			return r, nil
		}
		if !errors.Is(err, ErrModified) {
			return r, err
		}

		log.Debug("object {{oid}} modified concurrently, retrying", "oid", StringId(o))
		cur, err := db.GetObject(o)
		if err != nil {
			return r, err
		}
		var ok bool
		if o, ok = utils.TryCast[O](cur); !ok {
			return r, fmt.Errorf("unexpected Go type %T for %q", cur, cur.GetType())
		}
	}
}
