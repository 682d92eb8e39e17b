package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

type Delete struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewDelete(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete {<object id>}",
		Short: "delete mesh objects",
	}
	TweakCommand(cmd)

	c := &Delete{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Delete) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("object identifier required")
	}
	var errs []error
	for _, id := range args {
		err := Request(http.MethodDelete, c.mainopts.GetURL()+url.PathEscape(id), nil, nil)
		if err != nil {
			fmt.Fprintf(c.cmd.ErrOrStderr(), "%s: deletion failed: %s\n", id, err)
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s deleted\n", id)
	}
	if len(errs) > 1 {
		return fmt.Errorf("%d deletions failed", len(errs))
	}
	return errors.Join(errs...)
}
