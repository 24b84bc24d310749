package main

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zlib"
	"github.com/spf13/cobra"

	"github.com/joshuapare/esskit/cmd/essctl/logger"
	"github.com/joshuapare/esskit/ess"
	"github.com/joshuapare/esskit/ess/manifest"
)

var (
	buildAtomic bool
	buildSync   bool
	buildLevel  int
)

func init() {
	cmd := newBuildCmd()
	cmd.Flags().BoolVar(&buildAtomic, "atomic", false, "Write to a temporary file and rename into place")
	cmd.Flags().BoolVar(&buildSync, "sync", false, "Flush the output to stable storage before exiting")
	cmd.Flags().
		IntVar(&buildLevel, "level", zlib.DefaultCompression, "Compression level (-2 = Huffman only, -1 = default, 0-9)")
	rootCmd.AddCommand(cmd)
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <manifest.yaml> <out>",
		Short: "Build a compound file from a YAML manifest",
		Long: `The build command parses a YAML manifest and writes the resulting compound.

Example:
  essctl build save.yaml save.dat
  essctl build save.yaml save.dat --atomic --sync --level 9`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args)
		},
	}
}

func runBuild(args []string) error {
	src, dst := args[0], args[1]

	printVerbose("Parsing manifest: %s\n", src)
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}
	c, err := manifest.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", src, err)
	}

	opts := ess.DefaultWriteOptions()
	opts.Level = buildLevel
	opts.Atomic = buildAtomic
	opts.Sync = buildSync

	printVerbose("Writing: %s\n", dst)
	if err := ess.WriteFileWithOptions(dst, c, opts); err != nil {
		logger.Error("build failed", "manifest", src, "out", dst, "error", err)
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	logger.Info("compound built", "manifest", src, "out", dst, "entries", c.Len())

	if jsonOut {
		return printJSON(map[string]any{"out": dst, "entries": c.Len()})
	}
	printInfo("Wrote %d entries to %s\n", c.Len(), dst)
	return nil
}
