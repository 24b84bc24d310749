package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/esskit/cmd/essctl/logger"
	"github.com/joshuapare/esskit/ess"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "essctl",
	Short: "Inspect and build compressed compound files",
	Long: `essctl reads, writes and verifies compound files: named, typed values
stored as a zlib-compressed binary stream. Compounds can be dumped as text or
JSON, exported to a YAML manifest and built back from one.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Enable logging at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Write logs to this file (\"-\" for stderr)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging enables the logger when --log-level or --log-file is given
// and routes library logs through it.
func setupLogging(_ *cobra.Command, _ []string) error {
	opts := logger.Options{
		Enabled: logLevel != "" || logFile != "",
		File:    logFile,
	}
	if logLevel != "" {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		opts.Level = level
	}
	if err := logger.Init(opts); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	ess.SetLogger(logger.L)
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// readCompound loads a compound file, logging the outcome.
func readCompound(path string) (*ess.Compound, error) {
	printVerbose("Reading: %s\n", path)
	c, err := ess.ReadFile(path)
	if err != nil {
		logger.Error("read failed", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	logger.Debug("read compound", "path", path, "entries", c.Len())
	return c, nil
}
