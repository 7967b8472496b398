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
		Use:   "columns [arrayPath]",
		Short: "Flatten an array's item schema into grid columns",
		Args:  cobra.MaximumNArgs(1),
		Run:   runColumns,
	}
	cmd.Flags().Int("max-depth", grid.MaxDepth, "Flattening depth bound")
	rootCmd.AddCommand(cmd)
}

func runColumns(cmd *cobra.Command, args []string) {
	maxDepth, _ := cmd.Flags().GetInt("max-depth")

	schema := loadSchema()
	item := schema
	if len(args) == 1 {
		p, err := docedit.ParsePath(args[0])
		if err != nil {
			exitErr("parse path", err)
		}
		at, err := schemaAt(schema, p)
		if err != nil {
			exitErr("resolve path", err)
		}
		if at.Type != docedit.TypeArray || at.Items == nil {
			exitErr("resolve path", fmt.Errorf("%s is not an array schema", args[0]))
		}
		item = at.Items
	} else if item.Type == docedit.TypeArray && item.Items != nil {
		item = item.Items
	}

	cols, err := grid.ColumnsMaxDepth(item, maxDepth)
	if err != nil {
		exitErr("flatten", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tTYPE\tDEPTH\tTITLE")
	for _, c := range cols {
		path := c.Path
		if path == "" {
			path = "(item)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", path, c.Schema.Type, c.Depth, c.Title())
	}
	w.Flush()
}
