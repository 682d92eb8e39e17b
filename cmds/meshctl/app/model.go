package app

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/modelbase"
)

type ModelOptions struct {
	mainopts *Options
	dir      string
}

// ModelBase provides the model base with the built-in subject areas
// and the subject areas found in the configured directory.
// It returns the subject areas loaded from the directory, also.
func (o *ModelOptions) ModelBase() (modelbase.ModelBase, []modelbase.SubjectArea, error) {
	if o.dir == "" {
		return modelbase.Singleton(), nil, nil
	}
	mb := modelbase.New()
	var specs []*modelbase.SubjectAreaSpecification
	for _, sa := range modelbase.Singleton().SubjectAreas() {
		specs = append(specs, sa.Specification())
	}
	_, err := mb.LoadSubjectAreas(specs...)
	if err != nil {
		return nil, nil, err
	}
	list, err := modelbase.LoadDirectory(mb, o.mainopts.fs, o.dir)
	if err != nil {
		return nil, nil, err
	}
	return mb, list, nil
}

func NewModel(opts *Options) *cobra.Command {
	mopts := &ModelOptions{mainopts: opts}
	cmd := &cobra.Command{
		Use:   "model <cmd>",
		Short: "inspect subject areas",
		Long: `
Inspect the built-in subject areas, optionally extended by the
subject area specifications found in a directory.
`,
		TraverseChildren: true,
	}
	TweakCommand(cmd)
	cmd.PersistentFlags().StringVarP(&mopts.dir, "dir", "d", "", "directory with additional subject areas")

	cmd.AddCommand(NewModelList(mopts))
	cmd.AddCommand(NewModelDump(mopts))
	cmd.AddCommand(NewModelShow(mopts))
	cmd.AddCommand(NewModelValidate(mopts))
	return cmd
}

////////////////////////////////////////////////////////////////////////////////

type ModelList struct {
	cmd    *cobra.Command
	opts   *ModelOptions
	remote bool
	output string
}

func NewModelList(opts *ModelOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <options>",
		Short: "list subject areas",
	}
	TweakCommand(cmd)
	c := &ModelList{cmd: cmd, opts: opts}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	cmd.Flags().BoolVarP(&c.remote, "remote", "r", false, "list subject areas of the server")
	cmd.Flags().StringVarP(&c.output, "output", "o", "", "output format (table, json, yaml)")
	return cmd
}

func (c *ModelList) Run(args []string) error {
	var list []*service.SubjectAreaInfo

	if c.remote {
		var items service.Items[*service.SubjectAreaInfo]
		err := Request(http.MethodGet, c.opts.mainopts.GetModelURL(), nil, &items)
		if err != nil {
			return err
		}
		list = items.Items
	} else {
		mb, _, err := c.opts.ModelBase()
		if err != nil {
			return err
		}
		for _, sa := range mb.SubjectAreas() {
			list = append(list, service.NewSubjectAreaInfo(sa))
		}
	}
	slices.SortFunc(list, func(a, b *service.SubjectAreaInfo) int { return modelbase.CompareIdentifier(a.Name, b.Name) })

	output := OptionalOutput(c.output, c.opts.mainopts)
	switch normalize(output) {
	case "", OUTPUT_TABLE, OUTPUT_WIDE:
		PrintSubjectAreas(c.cmd.OutOrStdout(), list)
		return nil
	default:
		return PrintStructured(c.cmd.OutOrStdout(), &service.Items[*service.SubjectAreaInfo]{Items: list}, output)
	}
}

func PrintSubjectAreas(w io.Writer, list []*service.SubjectAreaInfo) {
	max := len("NAME")
	for _, i := range list {
		if len(i.Name) > max {
			max = len(i.Name)
		}
	}
	f := fmt.Sprintf("%%-%ds %%-16s %%s", max)
	printLine(w, []string{"NAME", "FINGERPRINT", "DEPENDENCIES"}, f)
	for _, i := range list {
		fp := i.Fingerprint
		if len(fp) > 16 {
			fp = fp[:16]
		}
		var deps []string
		for _, d := range i.Dependencies {
			deps = append(deps, d.String())
		}
		printLine(w, []string{i.Name.String(), fp, strings.Join(deps, ",")}, f)
	}
}

////////////////////////////////////////////////////////////////////////////////

type ModelDump struct {
	cmd  *cobra.Command
	opts *ModelOptions
}

func NewModelDump(opts *ModelOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump {<subject area>}",
		Short: "describe subject areas",
	}
	TweakCommand(cmd)
	c := &ModelDump{cmd: cmd, opts: opts}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *ModelDump) Run(args []string) error {
	mb, _, err := c.opts.ModelBase()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		mb.Dump(c.cmd.OutOrStdout())
		return nil
	}
	for _, n := range args {
		sa, err := mb.FindSubjectArea(modelbase.Identifier(n))
		if err != nil {
			return err
		}
		modelbase.DumpSubjectArea(c.cmd.OutOrStdout(), sa)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////

type ModelShow struct {
	cmd    *cobra.Command
	opts   *ModelOptions
	output string
}

func NewModelShow(opts *ModelOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <identifier>",
		Short: "show a meta type",
		Long: `
Show a meta type given by its identifier. For subject areas
the specification is shown.
`,
	}
	TweakCommand(cmd)
	c := &ModelShow{cmd: cmd, opts: opts}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	cmd.Flags().StringVarP(&c.output, "output", "o", "", "output format for subject areas (yaml, json)")
	return cmd
}

func (c *ModelShow) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one identifier required")
	}
	mb, _, err := c.opts.ModelBase()
	if err != nil {
		return err
	}
	t, err := mb.FindMeshType(modelbase.Identifier(args[0]))
	if err != nil {
		return err
	}
	w := c.cmd.OutOrStdout()
	switch m := t.(type) {
	case modelbase.SubjectArea:
		output := c.output
		if output == "" {
			output = OUTPUT_YAML
		}
		return PrintStructured(w, m.Specification(), output)
	case modelbase.EntityType:
		modelbase.DumpEntityType(w, m, "")
	case modelbase.PropertyType:
		fmt.Fprintf(w, "property type %s of %s\n", m.Identifier(), m.EntityType().Identifier())
		fmt.Fprintf(w, "  data type: %s\n", m.DataType())
		fmt.Fprintf(w, "  optional:  %t\n", m.IsOptional())
		fmt.Fprintf(w, "  read-only: %t\n", m.IsReadOnly())
		if v := m.DefaultValue(); v != nil {
			fmt.Fprintf(w, "  default:   %s\n", v)
		}
	case modelbase.RelationshipType:
		fmt.Fprintf(w, "relationship type %s\n", m.Identifier())
		for _, r := range []modelbase.RoleType{m.Source(), m.Destination()} {
			describeRole(w, r)
		}
	case modelbase.RoleType:
		describeRole(w, m)
	}
	return nil
}

func describeRole(w io.Writer, r modelbase.RoleType) {
	et := "<any>"
	if r.EntityType() != nil {
		et = r.EntityType().Identifier().String()
	}
	fmt.Fprintf(w, "  role %s: %s %s\n", r.Identifier(), et, r.Multiplicity())
	for _, refined := range r.RefinedRoleTypes() {
		fmt.Fprintf(w, "    refines %s\n", refined.Identifier())
	}
}

////////////////////////////////////////////////////////////////////////////////

type ModelValidate struct {
	cmd  *cobra.Command
	opts *ModelOptions
}

func NewModelValidate(opts *ModelOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "validate subject areas",
		Long: `
Validate the built-in subject areas together with the ones
found in the directory given by --dir.
`,
	}
	TweakCommand(cmd)
	c := &ModelValidate{cmd: cmd, opts: opts}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *ModelValidate) Run(args []string) error {
	w := c.cmd.OutOrStdout()
	failed := color.New(color.FgRed, color.Bold)
	ok := color.New(color.FgGreen)

	mb, list, err := c.opts.ModelBase()
	if err != nil {
		failed.Fprintf(w, "FAILED")
		fmt.Fprintf(w, " %s\n", err)
		return fmt.Errorf("invalid subject areas")
	}
	err = modelbase.Validate(mb)
	if err != nil {
		for _, l := range strings.Split(err.Error(), "\n") {
			failed.Fprintf(w, "FAILED")
			fmt.Fprintf(w, " %s\n", l)
		}
		return fmt.Errorf("invalid subject areas")
	}
	if list == nil {
		list = mb.SubjectAreas()
	}
	for _, sa := range list {
		ok.Fprintf(w, "OK")
		fmt.Fprintf(w, "     %s\n", sa.Identifier())
	}
	return nil
}
