package web

import (
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

// HasLinkTo_TYPE: Relates a web resource to the resources it links to.
var (
	HasLinkTo_TYPE        = lookup[modelbase.RelationshipType]("HasLinkTo")
	HasLinkTo_SOURCE      = lookup[modelbase.RoleType]("HasLinkTo-S")
	HasLinkTo_DESTINATION = lookup[modelbase.RoleType]("HasLinkTo-D")
)
