package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <key>...",
	Short: "Print the value stored under a key",
	Long: `Print the value stored under a key as a JSON literal.

Multiple keys descend one nesting level each; all keys but the last must
address mappings.

Example:
  figcon get config.json server port`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	file, keys := args[0], args[1:]

	store, err := openStore(file)
	if err != nil {
		return err
	}

	node, err := descend(store, keys[:len(keys)-1], false)
	if err != nil {
		return err
	}

	key := keys[len(keys)-1]
	val, ok := node.Get(key)
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}

	return printValue(cmd, val)
}
