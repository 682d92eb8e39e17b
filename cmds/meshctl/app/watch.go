package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/watch"
)

type Watch struct {
	cmd *cobra.Command

	mainopts *Options
	kinds    []string
	current  bool
	output   string
}

func NewWatch(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <options>",
		Short: "watch mesh object changes",
		Long: `
Print the change events of the mesh base until the command is
interrupted or the server closes the connection.
`,
	}
	TweakCommand(cmd)

	c := &Watch{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringSliceVarP(&c.kinds, "kind", "k", nil, "event kind ("+fmt.Sprint(mesh.EventKinds)+")")
	flags.BoolVarP(&c.current, "current", "c", false, "report existing objects first")
	flags.StringVarP(&c.output, "output", "o", "", "output format (text, json)")
	return cmd
}

func (c *Watch) Run(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("no arguments expected")
	}
	for _, k := range c.kinds {
		if !slices.Contains(mesh.EventKinds, k) {
			return fmt.Errorf("invalid event kind %q", k)
		}
	}
	ctx, cancel := signal.NotifyContext(c.cmd.Context(), os.Interrupt)
	defer cancel()

	s, err := Consume(ctx, c.cmd.OutOrStdout(), c.mainopts, c.Request(), c.output == "json")
	if err != nil {
		return err
	}
	return s.Wait()
}

func (c *Watch) Request() mesh.WatchRequest {
	return mesh.WatchRequest{
		MeshBase: c.mainopts.meshbase,
		Kinds:    c.kinds,
		Current:  c.current,
	}
}

func Consume(ctx context.Context, w io.Writer, opts *Options, req mesh.WatchRequest, asJSON bool) (watch.Syncher, error) {
	address, err := opts.GetWatchURL()
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	c := watch.NewClient[mesh.WatchRequest, *mesh.ChangeEvent](address)
	return c.Register(ctx, req, &handler{w: w, json: asJSON})
}

type handler struct {
	lock sync.Mutex
	w    io.Writer
	json bool
}

func (h *handler) HandleEvent(e *mesh.ChangeEvent) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.json {
		data, _ := json.Marshal(e)
		fmt.Fprintf(h.w, "%s\n", string(data))
	} else {
		fmt.Fprintf(h.w, "%s %s\n", e.Time, e)
	}
}
