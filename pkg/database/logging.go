package database

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/database", "generic object store")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
