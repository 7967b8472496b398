package main

import (
	"fmt"

	"github.com/spf13/cobra"

	docedit "github.com/structedit/docedit"
)

func init() {
	cmd := &cobra.Command{
		Use:   "set <path> <json-value>",
		Short: "Rewrite the value at a path and print the new document",
		Args:  cobra.ExactArgs(2),
		Run:   runSet,
	}
	rootCmd.AddCommand(cmd)
}

func runSet(cmd *cobra.Command, args []string) {
	p, err := docedit.ParsePath(args[0])
	if err != nil {
		exitErr("parse path", err)
	}
	value, err := docedit.DecodeDocumentJSON([]byte(args[1]))
	if err != nil {
		exitErr("parse value", err)
	}
	doc := loadDocument()
	st := docedit.NewStore(doc)
	st.UpdateAtPath(p, value)
	b, err := docedit.EncodeDocumentJSON(st.Document())
	if err != nil {
		exitErr("encode", err)
	}
	fmt.Println(string(b))
}
