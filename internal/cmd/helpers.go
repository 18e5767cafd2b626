package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thirteen37/figcon"
	"github.com/thirteen37/figcon/format"
	inifmt "github.com/thirteen37/figcon/format/ini"
	jsonfmt "github.com/thirteen37/figcon/format/json"
	tomlfmt "github.com/thirteen37/figcon/format/toml"
	yamlfmt "github.com/thirteen37/figcon/format/yaml"
)

// handlerFor selects a codec from the --format flag, falling back to the
// file extension when the flag is "auto". Unknown extensions default to JSON.
func handlerFor(file string) (format.Handler, error) {
	name := flagFormat
	if name == "auto" {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".toml":
			name = "toml"
		case ".yaml", ".yml":
			name = "yaml"
		case ".ini":
			name = "ini"
		default:
			name = "json"
		}
	}

	switch name {
	case "json":
		return jsonfmt.New(), nil
	case "toml":
		return tomlfmt.New(), nil
	case "yaml":
		return yamlfmt.New(), nil
	case "ini":
		return inifmt.New(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// openStore loads the store for file with the flag-selected options.
func openStore(file string) (*figcon.Store, error) {
	handler, err := handlerFor(file)
	if err != nil {
		return nil, err
	}

	opts := []figcon.Option{figcon.WithHandler(handler)}
	if flagStripComments {
		opts = append(opts, figcon.WithStripComments())
	}
	if flagIndent != "" {
		opts = append(opts, figcon.WithIndent(flagIndent))
	}

	return figcon.LoadOrDefault(file, opts...), nil
}

// descend walks the store one key at a time, returning the node addressed
// by keys. With create set, missing levels are created on the way down.
func descend(store *figcon.Store, keys []string, create bool) (*figcon.Node, error) {
	node := store.Root()
	for _, key := range keys {
		if create {
			child, err := node.EnsureChild(key)
			if err != nil {
				return nil, err
			}
			node = child
			continue
		}
		child, ok := node.Child(key)
		if !ok {
			return nil, fmt.Errorf("no mapping at key %q", key)
		}
		node = child
	}
	return node, nil
}

// parseValue interprets a command-line value as a JSON literal, falling back
// to a plain string. "8080" becomes a number and "true" a boolean, while
// "hello" stays a string.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// printValue writes a value as a single JSON line to the command's output.
func printValue(cmd *cobra.Command, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render value: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
