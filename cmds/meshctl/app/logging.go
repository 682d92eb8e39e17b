package app

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/meshctl", "mesh base command line client")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
