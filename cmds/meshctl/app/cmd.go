package app

import (
	"net/url"
	"strings"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/meshmodel/pkg/utils"

	_ "github.com/mandelsoft/meshmodel/pkg/models/all"
)

const (
	MESH_PATH  = "mesh/"
	MODEL_PATH = "model/"
	WATCH_PATH = "watch"
)

type Options struct {
	address  string
	output   string
	meshbase string
	level    string
	fs       vfs.FileSystem
}

func (o *Options) base() string {
	a := o.address
	if !strings.HasPrefix(a, "http://") && !strings.HasPrefix(a, "https://") {
		a = "https://" + a
	}
	if !strings.HasSuffix(a, "/") {
		a += "/"
	}
	return a
}

// GetURL provides the URL of the object API.
func (o *Options) GetURL() string {
	return o.base() + MESH_PATH
}

func (o *Options) GetModelURL() string {
	return o.base() + MESH_PATH + MODEL_PATH
}

// GetWatchURL provides the websocket URL of the watch endpoint.
func (o *Options) GetWatchURL() (string, error) {
	u, err := url.Parse(o.base())
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return scheme + "://" + u.Host + "/" + WATCH_PATH, nil
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	cfg := GetConfig(opts.fs)
	opts.address = *cfg.Server
	if cfg.Output != nil {
		opts.output = *cfg.Output
	}
	if cfg.MeshBase != nil {
		opts.meshbase = *cfg.MeshBase
	}

	maincmd := &cobra.Command{
		Use:   "meshctl <options> <cmd> <args>",
		Short: "access a mesh base",
		Long: `
This command can be used to inspect the built-in and locally
defined subject areas and to manipulate the mesh objects
of a mesh base server.

Defaults are taken from .meshctl files found in the home directory,
the user config directory and the current directory, and from the
environment variables ` + ENV_SERVER + `, ` + ENV_OUTPUT + ` and ` + ENV_MESHBASE + `.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.level == "" {
				return nil
			}
			l, err := logging.ParseLevel(opts.level)
			if err != nil {
				return err
			}
			logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("meshmodel")))
			return nil
		},
	}

	flags := maincmd.Flags()

	flags.StringVarP(&opts.address, "server", "s", opts.address, "mesh base server")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "default output format (table, json, yaml)")
	flags.StringVarP(&opts.meshbase, "meshbase", "m", opts.meshbase, "mesh base name for watch requests")
	flags.StringVarP(&opts.level, "log-level", "L", "", "log level")

	maincmd.AddCommand(NewModel(opts))
	maincmd.AddCommand(NewGet(opts))
	maincmd.AddCommand(NewCreate(opts))
	maincmd.AddCommand(NewSet(opts))
	maincmd.AddCommand(NewDelete(opts))
	maincmd.AddCommand(NewWatch(opts))
	maincmd.AddCommand(NewFake(opts))
	return maincmd
}

// TweakCommand adds common settings to sub commands.
func TweakCommand(cmd *cobra.Command) *cobra.Command {
	cmd.DisableFlagsInUseLine = true
	cmd.SilenceUsage = true
	return cmd
}
