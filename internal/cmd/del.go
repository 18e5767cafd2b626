package cmd

import (
	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:   "del <file> <key>...",
	Short: "Remove a key and save the file",
	Long: `Remove the entry stored under a key, then save. Removing a key
that holds a subtree drops everything nested beneath it. Removing an
absent key is not an error.

Example:
  figcon del config.json server port`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDel,
}

func runDel(cmd *cobra.Command, args []string) error {
	file, keys := args[0], args[1:]

	store, err := openStore(file)
	if err != nil {
		return err
	}

	node, err := descend(store, keys[:len(keys)-1], false)
	if err != nil {
		// Nothing on the way down, so nothing to remove.
		return nil
	}

	node.Remove(keys[len(keys)-1])
	return store.Save()
}
