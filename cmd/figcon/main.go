// figcon is a command-line front end for figcon configuration files.
package main

import "github.com/thirteen37/figcon/internal/cmd"

func main() {
	cmd.Execute()
}
