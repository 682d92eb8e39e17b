// Package all loads all built-in subject areas into the
// model base singleton.
package all

import (
	_ "github.com/mandelsoft/meshmodel/pkg/models/blob"
	_ "github.com/mandelsoft/meshmodel/pkg/models/bookmark"
	_ "github.com/mandelsoft/meshmodel/pkg/models/common"
	_ "github.com/mandelsoft/meshmodel/pkg/models/feeds"
	_ "github.com/mandelsoft/meshmodel/pkg/models/test"
	_ "github.com/mandelsoft/meshmodel/pkg/models/web"
)
