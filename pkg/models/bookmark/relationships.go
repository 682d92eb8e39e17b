package bookmark

import (
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

var (
	CollectsAny_TYPE        = lookup[modelbase.RelationshipType]("CollectsAny")
	CollectsAny_SOURCE      = lookup[modelbase.RoleType]("CollectsAny-S")
	CollectsAny_DESTINATION = lookup[modelbase.RoleType]("CollectsAny-D")
)

var (
	Collects_TYPE        = lookup[modelbase.RelationshipType]("Collects")
	Collects_SOURCE      = lookup[modelbase.RoleType]("Collects-S")
	Collects_DESTINATION = lookup[modelbase.RoleType]("Collects-D")
)

var (
	Bookmarks_TYPE        = lookup[modelbase.RelationshipType]("Bookmarks")
	Bookmarks_SOURCE      = lookup[modelbase.RoleType]("Bookmarks-S")
	Bookmarks_DESTINATION = lookup[modelbase.RoleType]("Bookmarks-D")
)

var (
	Uses_TYPE        = lookup[modelbase.RelationshipType]("Uses")
	Uses_SOURCE      = lookup[modelbase.RoleType]("Uses-S")
	Uses_DESTINATION = lookup[modelbase.RoleType]("Uses-D")
)
