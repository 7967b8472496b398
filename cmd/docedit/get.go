package main

import (
	"fmt"

	"github.com/spf13/cobra"

	docedit "github.com/structedit/docedit"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a path",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}
	rootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	p, err := docedit.ParsePath(args[0])
	if err != nil {
		exitErr("parse path", err)
	}
	doc := loadDocument()
	v, ok := docedit.Get(doc, p)
	if !ok {
		exitErr("get", fmt.Errorf("no value at %s", args[0]))
	}
	b, err := docedit.EncodeDocumentJSON(v)
	if err != nil {
		exitErr("encode", err)
	}
	fmt.Println(string(b))
}
