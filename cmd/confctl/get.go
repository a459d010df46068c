package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit/confkit/pkg/config"
)

var getFallback string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getFallback, "default", "", "Fallback printed when the path has no value")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get the value at a path",
		Long: `The get command parses a configuration file and prints the value at a
slash-separated path.

Example:
  confctl get broker.cfg main/type
  confctl get broker.cfg main/frontend/bind
  confctl get broker.cfg context/iothreads --default 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	filePath := args[0]
	keyPath := args[1]

	printVerbose("Parsing configuration: %s\n", filePath)

	root, err := config.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	if getFallback != "" {
		printInfo("%s\n", root.Resolve(keyPath, getFallback))
		return nil
	}

	node, err := root.Locate(keyPath)
	if err != nil {
		return err
	}
	value, ok := node.Value()
	if !ok {
		return fmt.Errorf("path %q has no value", keyPath)
	}

	if jsonOut {
		return printJSON(map[string]string{"path": keyPath, "value": value})
	}
	printInfo("%s\n", value)
	return nil
}
