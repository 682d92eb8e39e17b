package service

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/meshbase/service", "mesh base http access")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
