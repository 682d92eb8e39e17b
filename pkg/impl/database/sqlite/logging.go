package sqlite

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/database/sqlite", "sqlite database")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
