package app

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
)

type Get struct {
	cmd *cobra.Command

	mainopts *Options
	sort     string
	output   string
}

func NewGet(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get {<object id>} <options>",
		Short: "get mesh objects",
		Long: `
Show the given mesh objects, or all objects, if no identifier is given.
`,
	}
	TweakCommand(cmd)

	c := &Get{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.sort, "sort", "S", "", "sort field (identifier, types, updated)")
	flags.StringVarP(&c.output, "output", "o", "", "output format (table, wide, json, yaml)")
	return cmd
}

func (c *Get) Run(args []string) error {
	output := c.output
	if output == "" {
		output = c.mainopts.output
	}
	if err := CheckOutput(output); err != nil {
		return err
	}

	var list []*service.ObjectView
	useList := len(args) != 1

	if len(args) > 0 {
		for _, id := range args {
			o, err := GetObject(c.mainopts, id)
			if err != nil {
				return err
			}
			list = append(list, o)
		}
	} else {
		var l service.Items[*service.ObjectView]
		err := Request("LIST", c.mainopts.GetURL(), nil, &l)
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}
		list = l.Items
	}
	return PrintObjects(c.cmd.OutOrStdout(), list, useList, output, c.sort)
}

func GetObject(opts *Options, id string) (*service.ObjectView, error) {
	var o service.ObjectView
	err := Request(http.MethodGet, opts.GetURL()+url.PathEscape(id), nil, &o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &o, nil
}
