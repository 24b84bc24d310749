package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/esskit/cmd/essctl/logger"
	"github.com/joshuapare/esskit/ess"
)

func init() {
	rootCmd.AddCommand(newSampleCmd())
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample <out>",
		Short: "Write a sample compound and read it back",
		Long: `The sample command builds a small compound, writes it to the given path,
reads it back and reports whether the round-trip preserved every entry.

Example:
  essctl sample IOTest.dat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(args)
		},
	}
}

// sampleCompound is the compound the sample command writes.
func sampleCompound() *ess.Compound {
	c := ess.New()
	c.SetInt("TestInteger", 1337)
	c.SetString("TestString", "Hello World!")
	return c
}

func runSample(args []string) error {
	path := args[0]
	written := sampleCompound()

	printVerbose("Writing: %s\n", path)
	if err := ess.WriteFile(path, written); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("sample written", "path", path, "entries", written.Len())

	read, err := readCompound(path)
	if err != nil {
		return err
	}

	ok := read.Equal(written)
	if jsonOut {
		return printJSON(map[string]any{
			"path":       path,
			"written":    written.String(),
			"read":       read.String(),
			"successful": ok,
		})
	}

	printInfo("Written: %s\n", written)
	printInfo("Read:    %s\n", read)
	printInfo("Round-trip successful: %t\n", ok)
	if !ok {
		return fmt.Errorf("round-trip mismatch for %s", path)
	}
	return nil
}
