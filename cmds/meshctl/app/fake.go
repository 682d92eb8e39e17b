package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/meshmodel/cmds/meshctl/app/random"
	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type Fake struct {
	cmd *cobra.Command

	mainopts *Options
	optional int
	seed     int64
	quiet    bool
}

func NewFake(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake <entity type> <count> <options>",
		Short: "create mesh objects with random values",
		Long: `
Populate the mesh base with objects of the given entity type.
Mandatory properties always get a random value, optional ones
with the given probability. String values are taken from a
name generator.
`,
	}
	TweakCommand(cmd)

	c := &Fake{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.IntVarP(&c.optional, "optional", "p", 50, "probability in percent for optional values")
	flags.Int64VarP(&c.seed, "seed", "", 0, "random seed (default: current time)")
	flags.BoolVarP(&c.quiet, "quiet", "q", false, "do not print created objects")
	return cmd
}

func (c *Fake) Run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("entity type and count required")
	}
	et, err := modelbase.Singleton().FindEntityType(modelbase.Identifier(args[0]))
	if err != nil {
		return err
	}
	if et.IsAbstract() {
		return fmt.Errorf("entity type %q is abstract", et.Identifier())
	}
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 0 {
		return fmt.Errorf("invalid count %q", args[1])
	}

	var gen *random.Generator
	if c.seed != 0 {
		gen = random.New(c.seed)
	} else {
		gen = random.New()
	}

	for i := 0; i < count; i++ {
		r := &service.CreateRequest{
			Types:      []modelbase.Identifier{et.Identifier()},
			Properties: FakeProperties(gen, et, c.optional),
		}
		o, err := CreateObject(c.mainopts, r)
		if err != nil {
			return fmt.Errorf("object %d: %w", i+1, err)
		}
		if !c.quiet {
			fmt.Fprintf(c.cmd.OutOrStdout(), "%s created\n", o.Identifier)
		}
	}
	return nil
}

// FakeProperties provides random values for the writable
// properties of an entity type.
func FakeProperties(gen *random.Generator, et modelbase.EntityType, optional int) map[string]*string {
	props := map[string]*string{}
	for _, pt := range et.AllPropertyTypes() {
		if pt.IsReadOnly() {
			continue
		}
		if pt.IsOptional() && !gen.Chance(optional) {
			continue
		}
		v, ok := gen.Value(pt.DataType())
		if !ok {
			continue
		}
		s := v.String()
		props[pt.Identifier().String()] = &s
	}
	return props
}
