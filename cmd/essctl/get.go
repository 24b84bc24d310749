package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/esskit/ess/printer"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <name>",
		Short: "Get a single value",
		Long: `The get command retrieves and displays one named value of a compound file.

Example:
  essctl get IOTest.dat TestInteger
  essctl get IOTest.dat TestString --type
  essctl get IOTest.dat TestString --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	path, name := args[0], args[1]

	c, err := readCompound(path)
	if err != nil {
		return err
	}
	v, ok := c.Get(name)
	if !ok {
		return fmt.Errorf("value %q not found in %s", name, path)
	}

	opts := printer.DefaultOptions()
	opts.ShowValueTypes = getShowType
	if jsonOut {
		opts.Format = printer.FormatJSON
		opts.ShowValueTypes = true
	}

	if err := printer.PrintValue(os.Stdout, name, v, opts); err != nil {
		return fmt.Errorf("failed to print value: %w", err)
	}
	return nil
}
