package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type Create struct {
	cmd *cobra.Command

	mainopts   *Options
	properties []string
	output     string
}

func NewCreate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create {<entity type>} {-p <name>=<value>} <options>",
		Short: "create a mesh object",
		Long: `
Create a mesh object blessed with the given entity types.
Property names are property type identifiers or names local
to one of the given types. Values are given by their string
representation.
`,
	}
	TweakCommand(cmd)

	c := &Create{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringArrayVarP(&c.properties, "property", "p", nil, "property value (<name>=<value>)")
	flags.StringVarP(&c.output, "output", "o", "", "output format (table, wide, json, yaml)")
	return cmd
}

func (c *Create) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one entity type required")
	}
	props, err := ParseAssignments(c.properties)
	if err != nil {
		return err
	}
	r := &service.CreateRequest{
		Properties: props,
	}
	for _, t := range args {
		r.Types = append(r.Types, modelbase.Identifier(t))
	}
	o, err := CreateObject(c.mainopts, r)
	if err != nil {
		return err
	}
	return PrintObjects(c.cmd.OutOrStdout(), []*service.ObjectView{o}, false, OptionalOutput(c.output, c.mainopts), "")
}

func CreateObject(opts *Options, r *service.CreateRequest) (*service.ObjectView, error) {
	var o service.ObjectView
	err := Request(http.MethodPost, opts.GetURL(), r, &o)
	if err != nil {
		return nil, fmt.Errorf("create failed: %w", err)
	}
	return &o, nil
}

// ParseAssignments parses <name>=<value> arguments. A name
// without assignment describes a null value.
func ParseAssignments(args []string) (map[string]*string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	props := map[string]*string{}
	for _, a := range args {
		name, value, found := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("property name missing in %q", a)
		}
		if _, ok := props[name]; ok {
			return nil, fmt.Errorf("duplicate property %q", name)
		}
		if found {
			props[name] = &value
		} else {
			props[name] = nil
		}
	}
	return props, nil
}

func OptionalOutput(o string, opts *Options) string {
	if o != "" {
		return o
	}
	return opts.output
}
