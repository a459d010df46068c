package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confkit/confkit/pkg/config"
)

func init() {
	rootCmd.AddCommand(newTreeCmd())
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Print a configuration tree",
		Long: `The tree command parses a configuration file and prints the tree in
canonical form (four-space indentation, quoted values where needed).
An optional path restricts output to that subtree.

Example:
  confctl tree broker.cfg
  confctl tree broker.cfg main/frontend
  confctl tree broker.cfg --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	filePath := args[0]

	printVerbose("Parsing configuration: %s\n", filePath)

	root, err := config.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	node := root
	if len(args) == 2 {
		node, err = root.Locate(args[1])
		if err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(treeToMap(node))
	}
	return config.Save(os.Stdout, node)
}

// treeToMap converts a subtree to a JSON-friendly shape. Repeated sibling
// names collapse the earlier entries; use the text form when that matters.
func treeToMap(node *config.Node) map[string]interface{} {
	out := make(map[string]interface{}, len(node.Children))
	for _, child := range node.Children {
		if len(child.Children) > 0 {
			out[child.Name] = treeToMap(child)
			continue
		}
		if v, ok := child.Value(); ok {
			out[child.Name] = v
		} else {
			out[child.Name] = nil
		}
	}
	return out
}
