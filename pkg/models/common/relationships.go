package common

import (
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// Contains_TYPE: Relates a definition to its components.
var (
	Contains_TYPE        = lookup[modelbase.RelationshipType]("Contains")
	Contains_SOURCE      = lookup[modelbase.RoleType]("Contains-S")
	Contains_DESTINATION = lookup[modelbase.RoleType]("Contains-D")
)

// References_TYPE: Relates a component to the definition it refers to.
var (
	References_TYPE        = lookup[modelbase.RelationshipType]("References")
	References_SOURCE      = lookup[modelbase.RoleType]("References-S")
	References_DESTINATION = lookup[modelbase.RoleType]("References-D")
)
