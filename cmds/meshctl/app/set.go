package app

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type Set struct {
	cmd *cobra.Command

	mainopts *Options
	bless    []string
	unbless  []string
	relate   []string
	unrelate []string
	output   string
}

func NewSet(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <object id> {<name>[=<value>]} <options>",
		Short: "modify a mesh object",
		Long: `
Modify the blessing, the relationships and the property values
of a mesh object. Blessing is done first, then neighbors are related
and unrelated, the object is unblessed and finally the properties
are set. A property name without value sets the property to null.

A neighbor to relate is given by its identifier optionally followed
by '=' and a comma separated list of role types played by the
modified object.
`,
	}
	TweakCommand(cmd)

	c := &Set{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringArrayVarP(&c.bless, "bless", "b", nil, "bless with entity type")
	flags.StringArrayVarP(&c.unbless, "unbless", "u", nil, "unbless entity type")
	flags.StringArrayVarP(&c.relate, "relate", "r", nil, "relate neighbor (<id>[=<role type>{,<role type>}])")
	flags.StringArrayVarP(&c.unrelate, "unrelate", "U", nil, "unrelate neighbor")
	flags.StringVarP(&c.output, "output", "o", "", "output format (table, wide, json, yaml)")
	return cmd
}

func (c *Set) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("object identifier required")
	}
	props, err := ParseAssignments(args[1:])
	if err != nil {
		return err
	}
	if len(props) == 0 && len(c.bless) == 0 && len(c.unbless) == 0 && len(c.relate) == 0 && len(c.unrelate) == 0 {
		return fmt.Errorf("nothing to modify")
	}
	r := &service.UpdateRequest{
		Bless:      identifiers(c.bless),
		Unbless:    identifiers(c.unbless),
		Properties: props,
	}
	for _, e := range c.relate {
		r.Relate = append(r.Relate, ParseRelation(e))
	}
	for _, e := range c.unrelate {
		r.Unrelate = append(r.Unrelate, mesh.MeshObjectIdentifier(e))
	}

	var o service.ObjectView
	err = Request(http.MethodPut, c.mainopts.GetURL()+url.PathEscape(args[0]), r, &o)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return PrintObjects(c.cmd.OutOrStdout(), []*service.ObjectView{&o}, false, OptionalOutput(c.output, c.mainopts), "")
}

// ParseRelation parses a neighbor specification
// <id>[=<role type>{,<role type>}].
func ParseRelation(s string) service.Relation {
	id, roles, found := strings.Cut(s, "=")
	r := service.Relation{Neighbor: mesh.MeshObjectIdentifier(id)}
	if found && roles != "" {
		r.Roles = identifiers(strings.Split(roles, ","))
	}
	return r
}

func identifiers(list []string) []modelbase.Identifier {
	var r []modelbase.Identifier
	for _, e := range list {
		r = append(r, modelbase.Identifier(e))
	}
	return r
}
