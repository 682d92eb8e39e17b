package modelbase

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/modelbase", "meta model registry")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
