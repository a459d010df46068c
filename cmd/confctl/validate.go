package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit/confkit/pkg/config"
)

var validateStrict bool

func init() {
	cmd := newValidateCmd()
	cmd.Flags().BoolVar(&validateStrict, "strict", false, "Validate against the strict limits preset")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a configuration file and check structural limits",
		Long: `The validate command parses a configuration file and validates the
resulting tree against a limits preset (default or, with --strict, the
conservative preset for untrusted input).

Example:
  confctl validate broker.cfg
  confctl validate broker.cfg --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	filePath := args[0]

	limits := config.DefaultLimits()
	if validateStrict {
		limits = config.StrictLimits()
	}

	cfg := config.New(config.ParseOptions{Limits: &limits})
	root, err := cfg.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if err := root.Validate(limits); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	nodes := 0
	_ = config.Walk(root, func(n *config.Node, depth int) error {
		nodes++
		return nil
	})

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":  filePath,
			"valid": true,
			"nodes": nodes,
		})
	}
	printInfo("%s: OK (%d nodes)\n", filePath, nodes)
	return nil
}
