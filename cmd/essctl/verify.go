package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/esskit/cmd/essctl/logger"
	"github.com/joshuapare/esskit/ess"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a compound file decodes and re-encodes cleanly",
		Long: `The verify command decodes a compound file, encodes it again, decodes the
result and compares both compounds.

Example:
  essctl verify IOTest.dat
  essctl verify IOTest.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
}

type verifyResult struct {
	Path        string `json:"path"`
	Entries     int    `json:"entries"`
	Hash        string `json:"hash"`
	FileSize    int64  `json:"file_size"`
	EncodedSize int    `json:"encoded_size"`
	OK          bool   `json:"ok"`
}

func runVerify(args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	c, err := readCompound(path)
	if err != nil {
		return err
	}

	data, err := ess.Encode(c)
	if err != nil {
		return fmt.Errorf("failed to re-encode %s: %w", path, err)
	}
	again, err := ess.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode re-encoded %s: %w", path, err)
	}

	res := verifyResult{
		Path:        path,
		Entries:     c.Len(),
		Hash:        fmt.Sprintf("%016x", c.Hash()),
		FileSize:    info.Size(),
		EncodedSize: len(data),
		OK:          again.Equal(c),
	}
	logger.Info("verified", "path", path, "entries", res.Entries, "ok", res.OK)

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printInfo("File:         %s\n", res.Path)
		printInfo("Entries:      %d\n", res.Entries)
		printInfo("Hash:         %s\n", res.Hash)
		printInfo("File size:    %d bytes\n", res.FileSize)
		printInfo("Encoded size: %d bytes\n", res.EncodedSize)
		status := "OK"
		if !res.OK {
			status = "MISMATCH"
		}
		printInfo("Status:       %s\n", status)
	}

	if !res.OK {
		return fmt.Errorf("%s: re-encoded compound differs", path)
	}
	return nil
}
