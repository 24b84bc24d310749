package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/esskit/ess/manifest"
)

var exportOutput string

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the manifest to this file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export a compound file as a YAML manifest",
		Long: `The export command writes a compound as a YAML manifest that build accepts.

Example:
  essctl export IOTest.dat
  essctl export IOTest.dat -o IOTest.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
}

func runExport(args []string) error {
	c, err := readCompound(args[0])
	if err != nil {
		return err
	}
	data, err := manifest.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", args[0], err)
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	printVerbose("Exported %d entries to %s\n", c.Len(), exportOutput)
	return nil
}
