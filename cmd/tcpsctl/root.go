package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOut bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tcpsctl",
	Short: "Exercise a tiered compressed-page store from the command line",
	Long: `tcpsctl builds an in-memory pool for the duration of one invocation
and drives it through allocation, freeing, and reclamation, printing the
resulting bookkeeping. It is a demonstration and diagnostic tool, not a
long-running server: each subcommand starts from an empty pool.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print structured JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
