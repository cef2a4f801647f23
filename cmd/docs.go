package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: %t
permalink: /
---
`

const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docsCmd writes the Markdown documentation of every command.
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for cn2threejs",
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}
		return writeDocs(RootCmd, dir)
	},
}

// writeDocs renders the command tree under root to Markdown files in dir.
func writeDocs(root *cobra.Command, dir string) error {
	root.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(root, dir, filePrepender(root), linkHandler(root)); err != nil {
		return fmt.Errorf("failed to write docs to %s: %w", dir, err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
func filePrepender(root *cobra.Command) func(string) string {
	return func(filename string) string {
		base := strings.TrimSuffix(filepath.Base(filename), path.Ext(filename))
		if base == root.Name() {
			return fmt.Sprintf(rootPage, root.Name(), 0, root.HasAvailableSubCommands())
		}

		title := strings.TrimPrefix(base, root.Name()+"_")
		return fmt.Sprintf(childPage, title, root.Name(), 1)
	}
}

// linkHandler returns the URL to a documentation page
func linkHandler(root *cobra.Command) func(string) string {
	return func(filename string) string {
		base := strings.TrimSuffix(filepath.Base(filename), path.Ext(filename))
		if base == root.Name() {
			return "/"
		}
		return base
	}
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
