package meshbase

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/meshbase", "mesh object runtime")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
