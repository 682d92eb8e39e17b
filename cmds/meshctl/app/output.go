package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
	"github.com/mandelsoft/meshmodel/pkg/utils"
)

const (
	OUTPUT_TABLE = "table"
	OUTPUT_WIDE  = "wide"
	OUTPUT_JSON  = "json"
	OUTPUT_YAML  = "yaml"
)

var columns = []string{"IDENTIFIER", "TYPES", "UPDATED"}

func CheckOutput(o string) error {
	switch normalize(o) {
	case "", OUTPUT_TABLE, OUTPUT_WIDE, OUTPUT_JSON, OUTPUT_YAML:
		return nil
	}
	return fmt.Errorf("invalid output format %q", o)
}

func normalize(o string) string {
	return strings.ToLower(strings.TrimSpace(o))
}

// PrintObjects prints object views. For structured formats a single
// element is printed as plain object, otherwise as item list.
func PrintObjects(w io.Writer, list []*service.ObjectView, useList bool, output, sortField string) error {
	var elems interface{} = &service.Items[*service.ObjectView]{Items: list}
	if !useList && len(list) == 1 {
		elems = list[0]
	}
	switch normalize(output) {
	case "", OUTPUT_TABLE:
		return PrintObjectTable(w, list, false, sortField)
	case OUTPUT_WIDE:
		return PrintObjectTable(w, list, true, sortField)
	default:
		return PrintStructured(w, elems, output)
	}
}

func PrintStructured(w io.Writer, elems interface{}, output string) error {
	var data []byte
	var err error

	switch normalize(output) {
	case OUTPUT_JSON:
		data, err = json.Marshal(elems)
	case OUTPUT_YAML:
		data, err = yaml.Marshal(elems)
	default:
		return fmt.Errorf("invalid output format %q", output)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", strings.TrimSpace(string(data)))
	return nil
}

// PrintObjectTable prints a table of objects. The wide format adds
// one line per property value.
func PrintObjectTable(w io.Writer, list []*service.ObjectView, wide bool, sortField string) error {
	if len(list) == 0 {
		fmt.Fprintf(w, "no object found\n")
		return nil
	}

	sortField = strings.ToUpper(strings.TrimSpace(sortField))
	sort := 0
	if sortField != "" {
		sort = slices.Index(columns, sortField)
		if sort < 0 {
			return fmt.Errorf("unknown sort field %q", sortField)
		}
	}

	rows := MapFields(list)
	slices.SortStableFunc(rows, func(a, b row) int { return strings.Compare(a.fields[sort], b.fields[sort]) })

	max := make([]int, len(columns))
	for i, s := range columns {
		max[i] = len(s)
	}
	for _, r := range rows {
		for i, s := range r.fields {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columns, f)
	for _, r := range rows {
		printLine(w, r.fields, f)
		if wide {
			for _, k := range utils.OrderedMapKeys(r.view.Properties) {
				v := "<null>"
				if p := r.view.Properties[k]; p != nil {
					v = fmt.Sprintf("%q", *p)
				}
				fmt.Fprintf(w, "  %s: %s\n", k, v)
			}
			for _, n := range utils.OrderedMapKeys(r.view.Neighbors) {
				fmt.Fprintf(w, "  -> %s [%s]\n", n, utils.Join(r.view.Neighbors[n], ","))
			}
		}
	}
	return nil
}

type row struct {
	view   *service.ObjectView
	fields []string
}

func MapFields(list []*service.ObjectView) []row {
	var r []row
	for _, o := range list {
		types := utils.Join(o.Types, ",")
		r = append(r, row{o, []string{string(o.Identifier), types, o.Updated.String()}})
	}
	return r
}

func printLine(w io.Writer, cols []string, msg string) {
	args := make([]any, len(cols))
	for i, c := range cols {
		args[i] = c
	}
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, args...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}
