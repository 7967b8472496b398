// Command docedit is a plumbing CLI over schema-driven documents: flatten an
// array item schema to columns, read or rewrite a value at a path, and
// project array slices to flat rows. Schema and document files may be JSON or
// YAML (by extension).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	docedit "github.com/structedit/docedit"
)

var (
	schemaPath string
	dataPath   string
)

var rootCmd = &cobra.Command{
	Use:   "docedit",
	Short: "Inspect and transform schema-driven documents",
	Long:  "Flatten schemas to grid columns, address values by path, and project arrays to flat rows. Accepts JSON or YAML schema/document files.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "Schema file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Document file (.json, .yaml, .yml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func loadSchema() *docedit.Schema {
	if schemaPath == "" {
		exitErr("load schema", fmt.Errorf("--schema is required"))
	}
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		exitErr("load schema", err)
	}
	var s *docedit.Schema
	if isYAML(schemaPath) {
		s, err = docedit.ParseSchemaYAML(data)
	} else {
		s, err = docedit.ParseSchemaJSON(data)
	}
	if err != nil {
		exitErr("parse schema", err)
	}
	if err := s.Validate(); err != nil {
		exitErr("validate schema", err)
	}
	return s
}

func loadDocument() any {
	if dataPath == "" {
		exitErr("load document", fmt.Errorf("--data is required"))
	}
	data, err := os.ReadFile(dataPath)
	if err != nil {
		exitErr("load document", err)
	}
	var doc any
	if isYAML(dataPath) {
		doc, err = docedit.DecodeDocumentYAML(data)
	} else {
		doc, err = docedit.DecodeDocumentJSON(data)
	}
	if err != nil {
		exitErr("parse document", err)
	}
	return doc
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// schemaAt resolves a dotted/bracketed path against a schema: key segments
// descend into object fields, index segments into array items.
func schemaAt(root *docedit.Schema, p docedit.Path) (*docedit.Schema, error) {
	cur := root
	for _, seg := range p {
		if seg.IsIndex {
			if cur.Type != docedit.TypeArray || cur.Items == nil {
				return nil, docedit.ErrUnsupportedSchema
			}
			cur = cur.Items
			continue
		}
		next, ok := cur.Field(seg.Key)
		if !ok {
			return nil, fmt.Errorf("schema has no field %q under %q", seg.Key, cur.Name)
		}
		cur = next
	}
	return cur, nil
}
