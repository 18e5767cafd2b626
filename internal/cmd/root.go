// Package cmd provides the CLI commands for figcon.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figcon",
	Short: "Read and write document-backed configuration files",
	Long: `figcon reads and writes flat or nested key/value entries in a
configuration file backed by a structured document (JSON by default).

Keys are given one level at a time, so nested entries are addressed by
listing each key on the way down:

  figcon set config.json server port 8080
  figcon get config.json server port`,
}

var (
	flagFormat        string
	flagStripComments bool
	flagIndent        string
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto", "Config format (auto, json, toml, yaml, ini)")
	rootCmd.PersistentFlags().BoolVar(&flagStripComments, "strip-comments", false, "Strip // comments before parsing (JSONC)")
	rootCmd.PersistentFlags().StringVar(&flagIndent, "indent", "", "Indentation string used when writing")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(delCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(initCmd)
}
