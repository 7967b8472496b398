package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	docedit "github.com/structedit/docedit"
	"github.com/structedit/docedit/grid"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rows <arrayPath>",
		Short: "Project an array slice of the document onto flat rows",
		Args:  cobra.ExactArgs(1),
		Run:   runRows,
	}
	cmd.Flags().Bool("json", false, "Emit rows as JSON instead of a table")
	rootCmd.AddCommand(cmd)
}

func runRows(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")

	p, err := docedit.ParsePath(args[0])
	if err != nil {
		exitErr("parse path", err)
	}
	schema := loadSchema()
	at, err := schemaAt(schema, p)
	if err != nil {
		exitErr("resolve path", err)
	}
	if at.Type != docedit.TypeArray || at.Items == nil {
		exitErr("resolve path", fmt.Errorf("%s is not an array schema", args[0]))
	}
	cols, err := grid.Columns(at.Items)
	if err != nil {
		exitErr("flatten", err)
	}

	doc := loadDocument()
	v, ok := docedit.Get(doc, p)
	if !ok {
		exitErr("get", fmt.Errorf("no value at %s", args[0]))
	}
	items, ok := v.([]any)
	if !ok {
		exitErr("get", fmt.Errorf("value at %s is not an array", args[0]))
	}
	rows, err := grid.ToRows(items, cols)
	if err != nil {
		exitErr("project", err)
	}

	if asJSON {
		b, err := docedit.EncodeDocumentJSON(rows)
		if err != nil {
			exitErr("encode", err)
		}
		fmt.Println(string(b))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "#")
	for _, c := range cols {
		fmt.Fprintf(w, "\t%s", c.Title())
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		fmt.Fprintf(w, "%v", row[grid.RowIndexKey])
		for _, c := range cols {
			cell, ok := row[c.Path]
			if !ok {
				fmt.Fprint(w, "\t")
				continue
			}
			fmt.Fprintf(w, "\t%v", cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
