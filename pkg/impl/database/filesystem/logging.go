package filesystem

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/database/filesystem", "filesystem database")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
