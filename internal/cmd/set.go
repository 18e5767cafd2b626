package cmd

import (
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <file> <key>... <value>",
	Short: "Set the value stored under a key and save the file",
	Long: `Set the value stored under a key, creating the file and any
intermediate mappings as needed, then save.

The value is interpreted as a JSON literal when possible and as a plain
string otherwise, so "8080" stores a number and "hello" stores a string.

Example:
  figcon set config.json server port 8080`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	file, keys, value := args[0], args[1:len(args)-1], args[len(args)-1]

	store, err := openStore(file)
	if err != nil {
		return err
	}

	node, err := descend(store, keys[:len(keys)-1], true)
	if err != nil {
		return err
	}

	node.Set(keys[len(keys)-1], parseValue(value))
	return store.Save()
}
