package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <file> [key]...",
	Short: "List the keys of a mapping in document order",
	Long: `List the keys of the top-level mapping, or of the nested mapping
addressed by the given keys, one per line in document order.

Example:
  figcon keys config.json server`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	file, keys := args[0], args[1:]

	store, err := openStore(file)
	if err != nil {
		return err
	}

	node, err := descend(store, keys, false)
	if err != nil {
		return err
	}

	for _, k := range node.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}
