package events

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("meshmodel/events", "event dispatching")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
