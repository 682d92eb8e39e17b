package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/meshmodel/pkg/database"
	dbservice "github.com/mandelsoft/meshmodel/pkg/database/service"
	_ "github.com/mandelsoft/meshmodel/pkg/healthz"
	"github.com/mandelsoft/meshmodel/pkg/impl/database/filesystem"
	"github.com/mandelsoft/meshmodel/pkg/impl/database/sqlite"
	"github.com/mandelsoft/meshmodel/pkg/mesh"
	"github.com/mandelsoft/meshmodel/pkg/meshbase"
	mbservice "github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
	_ "github.com/mandelsoft/meshmodel/pkg/models/all"
	"github.com/mandelsoft/meshmodel/pkg/server"
	"github.com/mandelsoft/meshmodel/pkg/service"
)

const (
	STORE_FS     = "fs"
	STORE_SQLITE = "sqlite"
)

func Error(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func main() {
	var port int
	var name = "default"
	var store = STORE_FS
	var dbpath = "db"
	var models string
	var async bool
	var readonly bool
	var raw bool
	var level = "info"

	flags := pflag.NewFlagSet("meshbase", pflag.ExitOnError)

	flags.IntVarP(&port, "port", "p", 8080, "server port")
	flags.StringVarP(&level, "log-level", "L", level, "log level")
	flags.StringVarP(&store, "store", "s", store, "database store (fs or sqlite)")
	flags.StringVarP(&dbpath, "database", "d", dbpath, "database path (directory or sqlite file)")
	flags.StringVarP(&name, "name", "n", name, "mesh base name")
	flags.StringVarP(&models, "models", "m", "", "directory with additional subject areas")
	flags.BoolVarP(&async, "async", "a", false, "asynchronous event dispatch")
	flags.BoolVarP(&readonly, "readonly", "r", false, "reject all modifications")
	flags.BoolVarP(&raw, "raw", "", false, "serve raw database records under /db")

	err := flags.Parse(os.Args[1:])
	if err != nil {
		Error("invalid arguments: %s", err)
	}

	l, err := logging.ParseLevel(level)
	if err != nil {
		Error("invalid log level %q", level)
	}
	lctx := logging.DefaultContext()
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("meshmodel")))

	if models != "" {
		list, err := modelbase.LoadDirectory(modelbase.Singleton(), osfs.New(), models)
		if err != nil {
			Error("cannot load subject areas from %q: %s", models, err)
		}
		for _, sa := range list {
			log.Info("loaded subject area {{name}}", "name", sa.Identifier())
		}
	}

	var dbspec database.Specification[meshbase.Object]
	switch store {
	case STORE_FS:
		dbspec = filesystem.NewSpecification[meshbase.Object](dbpath)
	case STORE_SQLITE:
		dbspec = sqlite.NewSpecification[meshbase.Object](dbpath)
	default:
		Error("invalid store %q (use %s or %s)", store, STORE_FS, STORE_SQLITE)
	}
	db, err := dbspec.Create(meshbase.Scheme)
	if err != nil {
		Error("cannot open database: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var opts []meshbase.Option
	if async {
		opts = append(opts, meshbase.WithAsyncDispatch(ctx))
	}
	if readonly {
		opts = append(opts, meshbase.WithAccessManager(mesh.ReadOnlyAccessManager))
	}
	mb, err := meshbase.New(name, db, opts...)
	if err != nil {
		Error("cannot create mesh base: %s", err)
	}

	srv := server.NewServer(port, true, 20*time.Second)
	access := mbservice.New(mb, "/mesh")
	access.RegisterHandler(srv)
	if raw {
		dbservice.New(db, "/db").RegisterHandler(srv)
	}
	if models != "" {
		h, err := server.NewDirectoryHandlerFor(models, "/specs", ".yaml", ".yml")
		if err != nil {
			Error("cannot serve %q: %s", models, err)
		}
		h.RegisterHandler(srv)
	}

	reg := service.New(ctx)
	reg.Add(srv)

	err = reg.Start()
	if err != nil {
		Error("cannot start services: %s", err)
	}
	log.Info("mesh base {{name}} serving on {{addr}}", "name", name, "addr", srv.ListenAddr())
	err = reg.Wait()
	access.Close()
	mb.Close()
	if err != nil {
		Error("%s", err)
	}
}
