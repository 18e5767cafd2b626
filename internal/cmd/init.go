package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Create an empty configuration file",
	Long: `Create a new configuration file containing an empty document.
Fails if the file already exists.

Example:
  figcon init config.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	file := args[0]

	if _, err := os.Stat(file); err == nil {
		return fmt.Errorf("%s already exists", file)
	}

	store, err := openStore(file)
	if err != nil {
		return err
	}
	return store.Save()
}
