package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/esskit/ess/printer"
)

var (
	dumpTypes    bool
	dumpDepth    int
	dumpMaxBytes int
	dumpEncoding string
	dumpBOM      bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpTypes, "types", true, "Show value types")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().
		IntVar(&dumpMaxBytes, "max-bytes", printer.DefaultMaxValueBytes, "Bytes of binary values to show (0 = all)")
	cmd.Flags().
		StringVar(&dumpEncoding, "encoding", printer.EncodingUTF8, "Output encoding (UTF-8, UTF-16LE)")
	cmd.Flags().BoolVar(&dumpBOM, "bom", false, "Write a byte order mark with UTF-16LE output")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of a compound file",
		Long: `The dump command prints every entry of a compound file, names sorted.

Example:
  essctl dump IOTest.dat
  essctl dump IOTest.dat --depth 1 --types=false
  essctl dump IOTest.dat --json
  essctl dump IOTest.dat --encoding UTF-16LE --bom > dump.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	c, err := readCompound(args[0])
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.ShowValueTypes = dumpTypes
	opts.MaxDepth = dumpDepth
	opts.MaxValueBytes = dumpMaxBytes
	opts.Encoding = dumpEncoding
	opts.WithBOM = dumpBOM
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.Print(os.Stdout, c, opts); err != nil {
		return fmt.Errorf("failed to print %s: %w", args[0], err)
	}
	return nil
}
