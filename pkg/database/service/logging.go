package service

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/database/service", "raw database access")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
