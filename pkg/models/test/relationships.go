package test

import (
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

var (
	R_TYPE        = lookup[modelbase.RelationshipType]("R")
	R_SOURCE      = lookup[modelbase.RoleType]("R-S")
	R_DESTINATION = lookup[modelbase.RoleType]("R-D")
)

var (
	RR_TYPE        = lookup[modelbase.RelationshipType]("RR")
	RR_SOURCE      = lookup[modelbase.RoleType]("RR-S")
	RR_DESTINATION = lookup[modelbase.RoleType]("RR-D")
)

var (
	S_TYPE        = lookup[modelbase.RelationshipType]("S")
	S_SOURCE      = lookup[modelbase.RoleType]("S-S")
	S_DESTINATION = lookup[modelbase.RoleType]("S-D")
)

var (
	AR1A_TYPE        = lookup[modelbase.RelationshipType]("AR1A")
	AR1A_SOURCE      = lookup[modelbase.RoleType]("AR1A-S")
	AR1A_DESTINATION = lookup[modelbase.RoleType]("AR1A-D")
)

var (
	AR2A_TYPE        = lookup[modelbase.RelationshipType]("AR2A")
	AR2A_SOURCE      = lookup[modelbase.RoleType]("AR2A-S")
	AR2A_DESTINATION = lookup[modelbase.RoleType]("AR2A-D")
)

var (
	ARAny_TYPE        = lookup[modelbase.RelationshipType]("ARAny")
	ARAny_SOURCE      = lookup[modelbase.RoleType]("ARAny-S")
	ARAny_DESTINATION = lookup[modelbase.RoleType]("ARAny-D")
)
