package feeds

import (
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

var (
	Contains_TYPE        = lookup[modelbase.RelationshipType]("Contains")
	Contains_SOURCE      = lookup[modelbase.RoleType]("Contains-S")
	Contains_DESTINATION = lookup[modelbase.RoleType]("Contains-D")
)
